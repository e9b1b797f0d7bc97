package widgets

import (
	"github.com/go-drift/asciistats/pkg/core"
	"github.com/go-drift/asciistats/pkg/view"
)

// Action binds a mutation accessor to an action handle.
//
// The accessor is resolved against the live state every time the action is
// performed. If it does not resolve, performing the action does nothing.
type Action[S any] struct {
	Mutation core.Accessor[S]
}

// Blueprint returns the action blueprint.
func (w Action[S]) Blueprint() core.Blueprint[*view.Action, S] {
	return func(ctx *core.PresentationContext[S]) core.ReactiveElement[*view.Action, S] {
		return core.ReactiveElement[*view.Action, S]{
			Element: view.NewAction(core.Trigger(ctx, w.Mutation)),
			Update:  core.NoOpUpdate[S](),
		}
	}
}

// Button is a titled control performing Action when pressed.
type Button[S any] struct {
	Title string
	// Action is built against the same context as the button. When nil,
	// OnPress is used instead.
	Action core.Blueprint[*view.Action, S]
	// OnPress is a shorthand for Action[S]{Mutation: OnPress}.
	OnPress core.Accessor[S]
	// Enabled, when set, enables the button only for states it accepts.
	Enabled func(S) bool
}

// Blueprint returns the button blueprint.
func (w Button[S]) Blueprint() core.Blueprint[view.Node, S] {
	return func(ctx *core.PresentationContext[S]) core.ReactiveElement[view.Node, S] {
		actionBlueprint := w.Action
		if actionBlueprint == nil {
			actionBlueprint = Action[S]{Mutation: w.OnPress}.Blueprint()
		}
		action := actionBlueprint.Build(ctx)
		button := view.NewButton(w.Title, action.Element)

		return core.ReactiveElement[view.Node, S]{
			Element:  button,
			Retained: action.Retained,
			Update: func(prev, next S) {
				action.Apply(prev, next)
				if w.Enabled != nil {
					button.SetEnabled(w.Enabled(next))
				}
			},
		}
	}
}
