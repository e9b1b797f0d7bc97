package widgets

import (
	"github.com/go-drift/asciistats/pkg/core"
	"github.com/go-drift/asciistats/pkg/view"
)

// Padding adds empty space around its child.
//
//	Padding[S]{Padding: view.InsetsAll(1), Child: child}
//	Padding[S]{Padding: view.InsetsSymmetric(2, 0), Child: child}
type Padding[S any] struct {
	Padding view.Insets
	Child   Widget[S]
}

// Blueprint returns the padding blueprint.
func (w Padding[S]) Blueprint() core.Blueprint[view.Node, S] {
	var children []Widget[S]
	if w.Child != nil {
		children = []Widget[S]{w.Child}
	}
	return stackBlueprint(view.Vertical, 0, w.Padding, children)
}
