package widgets

import (
	"github.com/go-drift/asciistats/pkg/clock"
	"github.com/go-drift/asciistats/pkg/core"
	"github.com/go-drift/asciistats/pkg/view"
)

// DisplayLink drives Tick at a fixed rate while Active holds.
//
// The clock starts stopped. It is started only on a false->true edge of
// Active between two consecutive states and stopped only on the opposite
// edge.
type DisplayLink[S any] struct {
	// Active selects the flag that runs the clock.
	Active func(S) bool
	// Tick is resolved against the live state on every tick.
	Tick core.Accessor[S]
	// FPS is the tick rate. Zero means clock.DefaultFPS.
	FPS int
	// Clock creates the underlying clock. Nil uses clock.DefaultFactory.
	Clock clock.Factory
}

// ClockElement is the offstage element of a DisplayLink. It exposes the
// clock's state for inspection but offers no way to start or stop it.
type ClockElement struct {
	view.Offstage

	target  *clock.Target
	clock   clock.Clock
	phaseOf func() core.ClockPhase
}

// Phase returns the lifecycle phase of the element.
func (e *ClockElement) Phase() core.ClockPhase {
	return e.phaseOf()
}

// Active reports whether the underlying clock is running.
func (e *ClockElement) Active() bool {
	return e.clock.Active()
}

// Ticks returns how many ticks have been delivered.
func (e *ClockElement) Ticks() uint64 {
	return e.target.Ticks()
}

type stopOnRelease struct {
	clock clock.Clock
}

func (s stopOnRelease) Dispose() {
	s.clock.Stop()
}

// Blueprint returns the display link blueprint.
func (w DisplayLink[S]) Blueprint() core.Blueprint[view.Node, S] {
	return func(ctx *core.PresentationContext[S]) core.ReactiveElement[view.Node, S] {
		target := clock.NewTarget(core.Trigger(ctx, w.Tick))

		factory := w.Clock
		if factory == nil {
			factory = clock.DefaultFactory()
		}
		clk := factory(target, clock.Rate(w.FPS))

		active := w.Active
		if active == nil {
			active = func(S) bool { return false }
		}
		trigger := core.NewEdgeTrigger(active, clk.Start, clk.Stop)

		element := &ClockElement{
			target:  target,
			clock:   clk,
			phaseOf: trigger.Phase,
		}
		return core.ReactiveElement[view.Node, S]{
			Element:  element,
			Retained: core.Retain(target, stopOnRelease{clock: clk}),
			Update:   trigger.Update,
		}
	}
}
