package instrument_test

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-drift/asciistats/pkg/core"
	"github.com/go-drift/asciistats/pkg/instrument"
	dtesting "github.com/go-drift/asciistats/pkg/testing"
	"github.com/go-drift/asciistats/pkg/view"
	"github.com/go-drift/asciistats/pkg/widgets"
)

type counter struct {
	Count     int
	Animating bool
	Increment core.Mutator[counter]
}

func increment(c *counter) { c.Count++ }

func incrementOf(c counter) core.Mutator[counter] { return c.Increment }

// spy is a label blueprint recording every transition it is updated with.
func spy(log *[][2]int) core.Blueprint[view.Node, counter] {
	return func(ctx *core.PresentationContext[counter]) core.ReactiveElement[view.Node, counter] {
		label := view.NewLabel("")
		return core.ReactiveElement[view.Node, counter]{
			Element: label,
			Update: func(prev, next counter) {
				*log = append(*log, [2]int{prev.Count, next.Count})
				label.SetText(strconv.Itoa(next.Count))
			},
		}
	}
}

func TestInstrument_IncrementScenario(t *testing.T) {
	var updates [][2]int
	root := widgets.ColumnOf[counter](
		widgets.Raw[counter]{Build: spy(&updates)},
		widgets.Button[counter]{Title: "+", OnPress: incrementOf},
	).Blueprint()

	in := instrument.New(counter{Increment: increment}, root)
	defer in.Close()

	button := dtesting.Find(in.Element(), dtesting.ByTitle("+")).Button()
	label := dtesting.Find(in.Element(), dtesting.ByType[*view.Label]()).Label()
	button.Press()
	button.Press()

	want := [][2]int{{0, 0}, {0, 1}, {1, 2}}
	if diff := cmp.Diff(want, updates); diff != "" {
		t.Errorf("label updates mismatch (-want +got):\n%s", diff)
	}
	if in.State().Count != 2 {
		t.Errorf("count = %d, want 2", in.State().Count)
	}
	if label.Text() != "2" {
		t.Errorf("label text = %q, want %q", label.Text(), "2")
	}
}

func TestInstrument_ToggleScenario(t *testing.T) {
	clocks := &dtesting.ManualClocks{}
	toggle := func(c *counter) { c.Animating = !c.Animating }
	root := widgets.ColumnOf[counter](
		widgets.DisplayLink[counter]{
			Active: func(c counter) bool { return c.Animating },
			Tick:   core.Static(core.Mutator[counter](increment)),
			Clock:  clocks.Factory(),
		},
	).Blueprint()

	in := instrument.New(counter{}, root)
	defer in.Close()

	clk := clocks.All()[0]
	if clk.Active() || clk.Starts() != 0 {
		t.Fatal("clock must start stopped")
	}

	in.Reduce(toggle)
	clocks.Step()
	clocks.Step()
	in.Reduce(toggle)
	clocks.Step()

	if clk.Starts() != 1 || clk.Stops() != 1 {
		t.Errorf("expected exactly one start and one stop, got %d/%d", clk.Starts(), clk.Stops())
	}
	if in.State().Count != 2 {
		t.Errorf("expected two delivered ticks, count = %d", in.State().Count)
	}
}

func TestInstrument_IndependentBuildsShareNothing(t *testing.T) {
	clocks := &dtesting.ManualClocks{}
	root := widgets.DisplayLink[counter]{
		Active: func(c counter) bool { return c.Animating },
		Tick:   incrementOf,
		Clock:  clocks.Factory(),
	}.Blueprint()

	a := instrument.New(counter{}, root)
	b := instrument.New(counter{}, root)
	defer a.Close()
	defer b.Close()

	if a.Element() == b.Element() {
		t.Fatal("independent builds returned the same element")
	}
	a.Reduce(func(c *counter) { c.Animating = true })
	all := clocks.All()
	if len(all) != 2 || !all[0].Active() || all[1].Active() {
		t.Error("activating one instrument must not affect the other")
	}
	if a.ID() == b.ID() {
		t.Error("instruments should have distinct IDs")
	}
}

func TestInstrument_ReentrantReduceIsDeferred(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	reg := prometheus.NewRegistry()

	var order []string
	root := core.Blueprint[view.Node, counter](func(ctx *core.PresentationContext[counter]) core.ReactiveElement[view.Node, counter] {
		return core.ReactiveElement[view.Node, counter]{
			Element: view.NewLabel(""),
			Update: func(prev, next counter) {
				order = append(order, "update "+strconv.Itoa(prev.Count)+"->"+strconv.Itoa(next.Count))
				if next.Count == 1 && prev.Count == 0 {
					ctx.Reduce(increment)
					order = append(order, "reduce returned")
				}
			},
		}
	})

	in := instrument.New(counter{}, root,
		instrument.WithLogger(logger),
		instrument.WithMetrics(instrument.NewMetrics(reg)),
	)
	in.Reduce(increment)

	want := []string{
		"update 0->0",
		"update 0->1",
		"reduce returned",
		"update 1->2",
	}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("propagation order mismatch (-want +got):\n%s", diff)
	}
	if in.State().Count != 2 {
		t.Errorf("count = %d, want 2", in.State().Count)
	}
	if !strings.Contains(logs.String(), "deferring") {
		t.Errorf("expected a warning about the deferred reduce, got %q", logs.String())
	}
	if got := counterValue(t, reg, "asciistats_instrument_deferred_reductions_total"); got != 1 {
		t.Errorf("deferred reductions = %v, want 1", got)
	}
	if got := counterValue(t, reg, "asciistats_instrument_reductions_total"); got != 2 {
		t.Errorf("reductions = %v, want 2", got)
	}
}

func TestInstrument_CloseReleasesOnce(t *testing.T) {
	clocks := &dtesting.ManualClocks{}
	root := widgets.DisplayLink[counter]{
		Active: func(c counter) bool { return c.Animating },
		Clock:  clocks.Factory(),
	}.Blueprint()

	in := instrument.New(counter{Animating: false}, root)
	in.Reduce(func(c *counter) { c.Animating = true })
	in.Close()
	in.Close()

	clk := clocks.All()[0]
	if clk.Active() || clk.Stops() != 1 {
		t.Errorf("close should stop the clock once, stops = %d", clk.Stops())
	}

	in.Reduce(increment)
	if in.State().Count != 0 {
		t.Error("reductions after Close must be ignored")
	}
}

func TestInstrument_NilMutatorIgnored(t *testing.T) {
	var updates [][2]int
	in := instrument.New(counter{}, spy(&updates))
	in.Reduce(nil)
	if len(updates) != 1 {
		t.Errorf("nil mutator should not propagate, got %v", updates)
	}
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %s not registered", name)
	return 0
}
