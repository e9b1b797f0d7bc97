package core_test

import (
	"fmt"

	"github.com/go-drift/asciistats/pkg/core"
)

type tally struct {
	Count int
}

type store struct {
	state tally
	root  core.ReactiveElement[string, tally]
}

func (s *store) State() tally { return s.state }

func (s *store) Reduce(m core.Mutator[tally]) {
	prev := s.state
	next := prev
	m(&next)
	s.root.Apply(prev, next)
	s.state = next
}

// This example builds a label blueprint whose update prints every transition
// it receives, then fires an action bound to the live state.
func ExampleBlueprint() {
	label := core.Blueprint[string, tally](func(ctx *core.PresentationContext[tally]) core.ReactiveElement[string, tally] {
		return core.ReactiveElement[string, tally]{
			Element: "count",
			Update: func(prev, next tally) {
				fmt.Printf("count %d -> %d\n", prev.Count, next.Count)
			},
		}
	})

	s := &store{}
	ctx := core.NewPresentationContext(s.state, core.Reducer[tally](s), nil)
	s.root = label.Build(ctx)

	increment := core.Static(func(t *tally) { t.Count++ })
	core.Fire(ctx, increment)
	core.Fire(ctx, increment)

	// Output:
	// count 0 -> 1
	// count 1 -> 2
}

// This example drives an edge trigger with a sequence of activity flags.
// Only changes of the flag start or stop the underlying clock.
func ExampleTransition() {
	phase := core.Stopped
	flags := []bool{false, true, true, false, false}
	for i := 1; i < len(flags); i++ {
		var effect core.Effect
		phase, effect = core.Transition(phase, flags[i-1], flags[i])
		fmt.Println(phase, effect)
	}

	// Output:
	// running start
	// running none
	// stopped stop
	// stopped none
}
