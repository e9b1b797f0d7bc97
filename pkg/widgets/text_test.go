package widgets_test

import (
	"strings"
	"testing"

	"github.com/go-drift/asciistats/pkg/core"
	drifttest "github.com/go-drift/asciistats/pkg/testing"
	"github.com/go-drift/asciistats/pkg/view"
	"github.com/go-drift/asciistats/pkg/widgets"
)

func TestLabel_FollowsState(t *testing.T) {
	tester := drifttest.NewTesterWithT(t, counter{Count: 3}, widgets.Screen[counter]{
		Children: []widgets.Widget[counter]{
			widgets.Label[counter]{Text: countText},
		},
	}.Blueprint())

	label := tester.Find(drifttest.ByType[*view.Label]()).Label()
	if label.Text() != "3" {
		t.Fatalf("initial sync should show 3, got %q", label.Text())
	}

	tester.Reduce(increment)
	if label.Text() != "4" {
		t.Errorf("label = %q, want 4", label.Text())
	}
}

func TestLabel_IdempotentUpdate(t *testing.T) {
	tester := drifttest.NewTesterWithT(t, counter{}, widgets.Screen[counter]{
		Children: []widgets.Widget[counter]{
			widgets.Label[counter]{Text: countText},
		},
	}.Blueprint())
	label := tester.Find(drifttest.ByType[*view.Label]()).Label()
	before := label.Revision()

	tester.Reduce(func(c *counter) { c.Limit = 9 })
	tester.Reduce(func(*counter) {})

	if label.Revision() != before {
		t.Errorf("updates with an unchanged count rewrote the label %d times", label.Revision()-before)
	}
}

func TestLabel_TransformAndLayout(t *testing.T) {
	tester := drifttest.NewTesterWithT(t, counter{Count: 7}, widgets.Screen[counter]{
		Children: []widgets.Widget[counter]{
			widgets.Label[counter]{
				Text:      countText,
				Transform: func(s string) string { return strings.Repeat("*", len(s)) + s },
				MinWidth:  4,
				Align:     view.AlignTrailing,
			},
		},
	}.Blueprint())

	tester.Snapshot().Matches(t, "  *7")
}

func TestText_NeverChanges(t *testing.T) {
	tester := drifttest.NewTesterWithT(t, counter{}, widgets.Screen[counter]{
		Children: []widgets.Widget[counter]{
			widgets.TitleOf[counter]("Totals"),
		},
	}.Blueprint())

	label := tester.Find(drifttest.ByText("Totals")).Label()
	tester.Reduce(increment)
	if label.Revision() != 0 {
		t.Errorf("static text was rewritten %d times", label.Revision())
	}
	tester.Snapshot().Matches(t, "TOTALS")
}

func TestLabel_NilTextRendersEmpty(t *testing.T) {
	b := widgets.Label[counter]{}.Blueprint()
	el := b.Build(core.NewPresentationContext(counter{Count: 1}, nil, nil))
	el.Apply(counter{}, counter{Count: 1})
	if got := el.Element.(*view.Label).Text(); got != "" {
		t.Errorf("label without selector = %q", got)
	}
}
