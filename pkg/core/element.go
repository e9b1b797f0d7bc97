package core

// UpdateFunc synchronizes an element with a state transition.
//
// Implementations must be pure with respect to state, side-effect only the
// element they own, and leave that element unchanged when prev equals next.
type UpdateFunc[S any] func(prev, next S)

// ReactiveElement pairs a constructed element handle with the procedure that
// keeps it in sync with state and the auxiliary objects it depends on.
type ReactiveElement[E, S any] struct {
	// Element is the handle handed to the rendering collaborator.
	Element E
	// Retained keeps auxiliary objects (callback targets, clocks) alive for
	// as long as the element lives.
	Retained RetainSet
	// Update is called with every committed state transition. A nil Update
	// behaves like NoOpUpdate.
	Update UpdateFunc[S]
}

// Apply forwards a state transition to the element's update procedure.
func (r ReactiveElement[E, S]) Apply(prev, next S) {
	if r.Update != nil {
		r.Update(prev, next)
	}
}

// Release disposes the retained objects of the element. The element must not
// receive further updates afterwards.
func (r ReactiveElement[E, S]) Release() {
	r.Retained.Release()
}

// NoOpUpdate returns an update procedure for elements that never change after
// construction, such as static titles.
func NoOpUpdate[S any]() UpdateFunc[S] {
	return func(_, _ S) {}
}
