package widgets

import (
	"github.com/go-drift/asciistats/pkg/core"
	"github.com/go-drift/asciistats/pkg/view"
)

// Column stacks its children vertically in declaration order.
type Column[S any] struct {
	Children []Widget[S]
	Spacing  int
	Margins  view.Insets
}

// Blueprint returns the column blueprint.
func (w Column[S]) Blueprint() core.Blueprint[view.Node, S] {
	return stackBlueprint(view.Vertical, w.Spacing, w.Margins, w.Children)
}

// Row places its children side by side in declaration order.
type Row[S any] struct {
	Children []Widget[S]
	Spacing  int
	Margins  view.Insets
}

// Blueprint returns the row blueprint.
func (w Row[S]) Blueprint() core.Blueprint[view.Node, S] {
	return stackBlueprint(view.Horizontal, w.Spacing, w.Margins, w.Children)
}

// ColumnOf creates a Column with the given children.
func ColumnOf[S any](children ...Widget[S]) Column[S] {
	return Column[S]{Children: children}
}

// RowOf creates a Row with the given children and a spacing of one cell.
func RowOf[S any](children ...Widget[S]) Row[S] {
	return Row[S]{Children: children, Spacing: 1}
}

func stackBlueprint[S any](axis view.Axis, spacing int, margins view.Insets, children []Widget[S]) core.Blueprint[view.Node, S] {
	return core.Group(func(nodes []view.Node) view.Node {
		stack := view.NewStack(axis)
		stack.Spacing = spacing
		stack.Margins = margins
		stack.Append(nodes...)
		return stack
	}, blueprints(children)...)
}

// Screen is the root of a navigable page.
type Screen[S any] struct {
	Title    string
	Children []Widget[S]
}

// Blueprint returns the screen blueprint.
func (w Screen[S]) Blueprint() core.Blueprint[*view.Screen, S] {
	return core.Group(func(nodes []view.Node) *view.Screen {
		screen := view.NewScreen(w.Title)
		screen.Append(nodes...)
		return screen
	}, blueprints(w.Children)...)
}
