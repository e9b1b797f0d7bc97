package core

// Reducer is the owner of the authoritative state. In an application it is
// the Instrument; tests may supply their own.
type Reducer[S any] interface {
	// Reduce applies m to the current state and propagates the change.
	Reduce(m Mutator[S])
	// State returns the current committed state.
	State() S
}

// Navigator receives push and pop requests from blueprints. The framework
// never calls it on its own.
type Navigator interface {
	Push(screen any)
	Pop()
}

type nopNavigator struct{}

func (nopNavigator) Push(any) {}
func (nopNavigator) Pop()     {}

// PresentationContext carries everything a Blueprint may use during
// construction: the state snapshot the tree is built from, the reduce entry
// point of the owning Reducer, and navigation hooks.
//
// A context is created once per tree, is immutable, and outlives the tree.
type PresentationContext[S any] struct {
	state     S
	reducer   Reducer[S]
	navigator Navigator
}

// NewPresentationContext creates a context for building a tree from state.
// A nil navigator is replaced by one that ignores every request.
func NewPresentationContext[S any](state S, reducer Reducer[S], navigator Navigator) *PresentationContext[S] {
	if navigator == nil {
		navigator = nopNavigator{}
	}
	return &PresentationContext[S]{
		state:     state,
		reducer:   reducer,
		navigator: navigator,
	}
}

// State returns the snapshot the tree was constructed from. Controls must
// not use it to decide what to do when fired; use Current instead.
func (c *PresentationContext[S]) State() S {
	return c.state
}

// Current returns the live state of the owning Reducer. Without a reducer it
// falls back to the construction snapshot.
func (c *PresentationContext[S]) Current() S {
	if c.reducer == nil {
		return c.state
	}
	return c.reducer.State()
}

// Reduce routes m to the owning Reducer.
func (c *PresentationContext[S]) Reduce(m Mutator[S]) {
	if c.reducer == nil || m == nil {
		return
	}
	c.reducer.Reduce(m)
}

// Push forwards a navigation push to the navigator.
func (c *PresentationContext[S]) Push(screen any) {
	c.navigator.Push(screen)
}

// Pop forwards a navigation pop to the navigator.
func (c *PresentationContext[S]) Pop() {
	c.navigator.Pop()
}
