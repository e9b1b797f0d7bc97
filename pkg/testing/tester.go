package testing

import (
	"github.com/go-drift/asciistats/pkg/clock"
	"github.com/go-drift/asciistats/pkg/core"
	"github.com/go-drift/asciistats/pkg/instrument"
	"github.com/go-drift/asciistats/pkg/navigation"
	"github.com/go-drift/asciistats/pkg/view"
)

// Tester builds a screen blueprint into an instrument with manual clocks and
// a recording navigator, and drives it from test code.
type Tester[S any] struct {
	t          TestingT
	clocks     *ManualClocks
	prevClocks clock.Factory
	navigator  *navigation.Stack
	instrument *instrument.Instrument[*view.Screen, S]
}

// NewTester builds screen from initial. Call Cleanup when done, or use
// NewTesterWithT instead.
func NewTester[S any](initial S, screen core.Blueprint[*view.Screen, S], opts ...instrument.Option) *Tester[S] {
	tr := &Tester[S]{
		clocks:    &ManualClocks{},
		navigator: navigation.NewStack(nil),
	}
	tr.prevClocks = clock.SetDefaultFactory(tr.clocks.Factory())
	opts = append([]instrument.Option{instrument.WithNavigator(tr.navigator)}, opts...)
	tr.instrument = instrument.New(initial, screen, opts...)
	tr.navigator.SetRoot(tr.instrument.Element())
	return tr
}

// NewTesterWithT creates a tester that reports failures to t and cleans up
// automatically when the test ends.
func NewTesterWithT[S any](t interface {
	TestingT
	Cleanup(func())
}, initial S, screen core.Blueprint[*view.Screen, S], opts ...instrument.Option) *Tester[S] {
	t.Helper()
	tr := NewTester(initial, screen, opts...)
	tr.t = t
	t.Cleanup(tr.Cleanup)
	return tr
}

// Cleanup closes the instrument and restores the default clock factory.
func (tr *Tester[S]) Cleanup() {
	tr.instrument.Close()
	clock.SetDefaultFactory(tr.prevClocks)
}

// Instrument returns the instrument under test.
func (tr *Tester[S]) Instrument() *instrument.Instrument[*view.Screen, S] {
	return tr.instrument
}

// State returns the current state.
func (tr *Tester[S]) State() S {
	return tr.instrument.State()
}

// Root returns the root screen.
func (tr *Tester[S]) Root() *view.Screen {
	return tr.instrument.Element()
}

// Navigator returns the navigation stack wired into the context.
func (tr *Tester[S]) Navigator() *navigation.Stack {
	return tr.navigator
}

// Visible returns the screen on top of the navigation stack.
func (tr *Tester[S]) Visible() view.Node {
	if n, ok := tr.navigator.Top().(view.Node); ok {
		return n
	}
	return tr.Root()
}

// Clocks returns the manual clocks created by display links.
func (tr *Tester[S]) Clocks() *ManualClocks {
	return tr.clocks
}

// Find evaluates finder against the root screen.
func (tr *Tester[S]) Find(finder Finder) FinderResult {
	return Find(tr.Root(), finder)
}

// Tap presses the first button matched by finder and reports whether the
// press was delivered.
func (tr *Tester[S]) Tap(finder Finder) bool {
	result := tr.Find(finder)
	if !result.Exists() {
		tr.fatalf("Tap: %s matched nothing", finder.Description())
		return false
	}
	b, ok := result.First().(*view.Button)
	if !ok {
		tr.fatalf("Tap: %s matched %T, not a button", finder.Description(), result.First())
		return false
	}
	return b.Press()
}

// Tick steps every active clock n times and returns the number of ticks
// delivered.
func (tr *Tester[S]) Tick(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += tr.clocks.Step()
	}
	return total
}

// TickUntilIdle steps clocks until none is active or limit steps have run.
// It returns the number of steps taken.
func (tr *Tester[S]) TickUntilIdle(limit int) int {
	for i := 0; i < limit; i++ {
		if tr.clocks.Step() == 0 {
			return i
		}
	}
	return limit
}

// Reduce applies m through the instrument.
func (tr *Tester[S]) Reduce(m core.Mutator[S]) {
	tr.instrument.Reduce(m)
}

// Snapshot renders the visible screen.
func (tr *Tester[S]) Snapshot() Snapshot {
	return CaptureSnapshot(tr.Visible())
}

func (tr *Tester[S]) fatalf(format string, args ...any) {
	if tr.t == nil {
		return
	}
	tr.t.Helper()
	tr.t.Fatalf(format, args...)
}
