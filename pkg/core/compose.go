package core

// Compose builds children against ctx in order and assembles their handles
// into a container.
//
// The handles are passed to assemble in declaration order. The returned
// element retains everything its children retain, and its update calls every
// child update synchronously, in the order the children were built, for
// every transition.
func Compose[E, C, S any](children []Blueprint[E, S], ctx *PresentationContext[S], assemble func([]E) C) ReactiveElement[C, S] {
	built := make([]ReactiveElement[E, S], len(children))
	handles := make([]E, len(children))
	retained := make([]RetainSet, len(children))
	for i, child := range children {
		built[i] = child.Build(ctx)
		handles[i] = built[i].Element
		retained[i] = built[i].Retained
	}

	var container C
	if assemble != nil {
		container = assemble(handles)
	}

	return ReactiveElement[C, S]{
		Element:  container,
		Retained: Merge(retained...),
		Update: func(prev, next S) {
			for _, c := range built {
				c.Apply(prev, next)
			}
		},
	}
}

// Group is the Blueprint form of Compose.
func Group[E, C, S any](assemble func([]E) C, children ...Blueprint[E, S]) Blueprint[C, S] {
	return func(ctx *PresentationContext[S]) ReactiveElement[C, S] {
		return Compose(children, ctx, assemble)
	}
}
