package widgets

import (
	"github.com/go-drift/asciistats/pkg/core"
	"github.com/go-drift/asciistats/pkg/view"
)

// Label displays a string derived from state and follows it on every update.
type Label[S any] struct {
	// Text selects the displayed string from state.
	Text func(S) string
	// Transform, when set, rewrites the selected string before display.
	Transform func(string) string
	Align     view.Align
	MinWidth  int
	Emphasis  view.Emphasis
}

// Blueprint returns the label blueprint.
func (w Label[S]) Blueprint() core.Blueprint[view.Node, S] {
	return func(ctx *core.PresentationContext[S]) core.ReactiveElement[view.Node, S] {
		label := w.newLabel("")
		return core.ReactiveElement[view.Node, S]{
			Element: label,
			Update: func(_, next S) {
				label.SetText(w.render(next))
			},
		}
	}
}

func (w Label[S]) render(s S) string {
	if w.Text == nil {
		return ""
	}
	text := w.Text(s)
	if w.Transform != nil {
		text = w.Transform(text)
	}
	return text
}

func (w Label[S]) newLabel(text string) *view.Label {
	label := view.NewLabel(text)
	label.Align = w.Align
	label.MinWidth = w.MinWidth
	label.Emphasis = w.Emphasis
	return label
}

// Text displays a fixed string. It never changes after construction.
type Text[S any] struct {
	Content  string
	Align    view.Align
	MinWidth int
	Emphasis view.Emphasis
}

// Blueprint returns the static text blueprint.
func (w Text[S]) Blueprint() core.Blueprint[view.Node, S] {
	return func(ctx *core.PresentationContext[S]) core.ReactiveElement[view.Node, S] {
		label := Label[S]{Align: w.Align, MinWidth: w.MinWidth, Emphasis: w.Emphasis}.newLabel(w.Content)
		return core.ReactiveElement[view.Node, S]{
			Element: label,
			Update:  core.NoOpUpdate[S](),
		}
	}
}

// TitleOf returns a title-styled Text.
func TitleOf[S any](content string) Text[S] {
	return Text[S]{Content: content, Emphasis: view.EmphasisTitle}
}
