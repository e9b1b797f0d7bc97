package widgets

import (
	"fmt"

	"github.com/go-drift/asciistats/pkg/core"
	"github.com/go-drift/asciistats/pkg/errors"
	"github.com/go-drift/asciistats/pkg/view"
)

// ErrorBoundary contains panics raised while its child is built or updated
// and shows a fallback instead.
//
// Once the child has failed it is released and the fallback takes its place
// for the rest of the element's life.
//
// Example:
//
//	widgets.ErrorBoundary[Run]{
//	    Child: RiskyChart{},
//	    Fallback: func(err *errors.PanicError) widgets.Widget[Run] {
//	        return widgets.Text[Run]{Content: "chart unavailable"}
//	    },
//	}
type ErrorBoundary[S any] struct {
	Child Widget[S]
	// Fallback builds the replacement. If nil, a text describing the panic
	// is shown.
	Fallback func(*errors.PanicError) Widget[S]
	// OnError is called when a panic is caught, after it was reported to the
	// global error handler.
	OnError func(*errors.PanicError)
}

// boundaryHolder releases whichever element the boundary currently shows.
type boundaryHolder[S any] struct {
	current core.ReactiveElement[view.Node, S]
}

func (h *boundaryHolder[S]) Dispose() {
	h.current.Release()
}

// Blueprint returns the error boundary blueprint.
func (w ErrorBoundary[S]) Blueprint() core.Blueprint[view.Node, S] {
	return func(ctx *core.PresentationContext[S]) core.ReactiveElement[view.Node, S] {
		box := view.NewStack(view.Vertical)
		holder := &boundaryHolder[S]{}
		failed := false

		fail := func(perr *errors.PanicError) {
			failed = true
			if w.OnError != nil {
				w.OnError(perr)
			}
			holder.current.Release()
			holder.current = core.ReactiveElement[view.Node, S]{}
			errors.Guard("widgets.ErrorBoundary.Fallback", func() {
				holder.current = w.fallback(perr).Blueprint().Build(ctx)
			})
			box.Replace(holder.current.Element)
		}

		perr := errors.Capture("widgets.ErrorBoundary", func() {
			if w.Child != nil {
				holder.current = w.Child.Blueprint().Build(ctx)
			}
		})
		if perr != nil {
			fail(perr)
		} else {
			box.Append(holder.current.Element)
		}

		return core.ReactiveElement[view.Node, S]{
			Element:  box,
			Retained: core.Retain(holder),
			Update: func(prev, next S) {
				if failed {
					errors.Guard("widgets.ErrorBoundary.Fallback", func() { holder.current.Apply(prev, next) })
					return
				}
				if perr := errors.Capture("widgets.ErrorBoundary", func() { holder.current.Apply(prev, next) }); perr != nil {
					fail(perr)
					errors.Guard("widgets.ErrorBoundary.Fallback", func() { holder.current.Apply(prev, next) })
				}
			},
		}
	}
}

func (w ErrorBoundary[S]) fallback(perr *errors.PanicError) Widget[S] {
	if w.Fallback != nil {
		if fb := w.Fallback(perr); fb != nil {
			return fb
		}
	}
	return Text[S]{Content: fmt.Sprintf("error: %v", perr.Value)}
}
