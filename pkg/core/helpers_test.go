package core

// testReducer is a minimal Reducer: it applies mutators to a copy of its
// state and forwards every transition to onChange before committing.
type testReducer[S any] struct {
	state      S
	onChange   func(prev, next S)
	reductions int
}

func (r *testReducer[S]) State() S { return r.state }

func (r *testReducer[S]) Reduce(m Mutator[S]) {
	r.reductions++
	prev := r.state
	next := Copy(prev)
	m(&next)
	if r.onChange != nil {
		r.onChange(prev, next)
	}
	r.state = next
}

// mount builds b against a fresh reducer holding initial and wires its update
// into the reducer.
func mount[E, S any](initial S, b Blueprint[E, S]) (*testReducer[S], ReactiveElement[E, S]) {
	r := &testReducer[S]{state: initial}
	el := b.Build(NewPresentationContext[S](initial, r, nil))
	r.onChange = el.Apply
	return r, el
}

type counter struct {
	Count  int
	Active bool
	Next   Mutator[counter]
}

func increment(c *counter) { c.Count++ }
func double(c *counter)    { c.Count *= 2 }
