package core

// Blueprint is a pure constructor from a presentation context to a live
// reactive element. Invoking the same blueprint against two independent
// contexts yields two elements that share no retained state.
type Blueprint[E, S any] func(ctx *PresentationContext[S]) ReactiveElement[E, S]

// Build invokes b against ctx. A nil blueprint builds a zero element with a
// no-op update.
func (b Blueprint[E, S]) Build(ctx *PresentationContext[S]) ReactiveElement[E, S] {
	if b == nil {
		return ReactiveElement[E, S]{Update: NoOpUpdate[S]()}
	}
	return b(ctx)
}

// Map converts the element handle produced by b. It is mostly used to widen
// a concrete handle type to the interface a container accepts.
func Map[E, F, S any](b Blueprint[E, S], convert func(E) F) Blueprint[F, S] {
	return func(ctx *PresentationContext[S]) ReactiveElement[F, S] {
		r := b.Build(ctx)
		return ReactiveElement[F, S]{
			Element:  convert(r.Element),
			Retained: r.Retained,
			Update:   r.Update,
		}
	}
}

// Observe returns a blueprint building b whose update additionally calls fn
// after the element has been synchronized.
func Observe[E, S any](b Blueprint[E, S], fn UpdateFunc[S]) Blueprint[E, S] {
	if fn == nil {
		return b
	}
	return func(ctx *PresentationContext[S]) ReactiveElement[E, S] {
		r := b.Build(ctx)
		return ReactiveElement[E, S]{
			Element:  r.Element,
			Retained: r.Retained,
			Update: func(prev, next S) {
				r.Apply(prev, next)
				fn(prev, next)
			},
		}
	}
}
