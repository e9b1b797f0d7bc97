package widgets

import (
	"github.com/go-drift/asciistats/pkg/core"
	"github.com/go-drift/asciistats/pkg/view"
)

// Link is a button that pushes Destination onto the navigator when pressed.
//
// The destination is built together with the link and kept in sync with
// every update, so it is current whenever it is shown.
type Link[S any] struct {
	Title       string
	Destination core.Blueprint[*view.Screen, S]
}

// Blueprint returns the link blueprint.
func (w Link[S]) Blueprint() core.Blueprint[view.Node, S] {
	return func(ctx *core.PresentationContext[S]) core.ReactiveElement[view.Node, S] {
		dest := w.Destination.Build(ctx)
		button := view.NewButton(w.Title, view.NewAction(func() {
			if dest.Element != nil {
				ctx.Push(dest.Element)
			}
		}))
		return core.ReactiveElement[view.Node, S]{
			Element:  button,
			Retained: dest.Retained,
			Update:   dest.Apply,
		}
	}
}

// Back is a button that pops the navigator.
type Back[S any] struct {
	Title string
}

// Blueprint returns the back button blueprint.
func (w Back[S]) Blueprint() core.Blueprint[view.Node, S] {
	return func(ctx *core.PresentationContext[S]) core.ReactiveElement[view.Node, S] {
		title := w.Title
		if title == "" {
			title = "Back"
		}
		return core.ReactiveElement[view.Node, S]{
			Element: view.NewButton(title, view.NewAction(ctx.Pop)),
			Update:  core.NoOpUpdate[S](),
		}
	}
}
