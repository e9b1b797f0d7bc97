// Package view defines the retained element handles blueprints construct and
// renderers draw.
//
// Handles are plain mutable objects with narrow patch methods (SetText,
// SetEnabled, Append). They know nothing about state; the update procedures
// built by blueprints are the only code that patches them after
// construction.
package view

// Node is any handle that can be placed in a container.
type Node interface {
	isNode()
}

// Align controls horizontal text alignment within a label's minimum width.
type Align int

const (
	// AlignNatural aligns text to the leading edge.
	AlignNatural Align = iota
	// AlignCenter centers text.
	AlignCenter
	// AlignTrailing aligns text to the trailing edge.
	AlignTrailing
)

// Emphasis selects the text style of a label.
type Emphasis int

const (
	// EmphasisBody is regular body text.
	EmphasisBody Emphasis = iota
	// EmphasisTitle is section title text.
	EmphasisTitle
)

// Axis is the direction a stack lays out its children.
type Axis int

const (
	// Vertical stacks children top to bottom.
	Vertical Axis = iota
	// Horizontal stacks children left to right.
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Insets are margins in character cells.
type Insets struct {
	Top, Left, Bottom, Right int
}

// InsetsAll returns insets of n cells on every side.
func InsetsAll(n int) Insets {
	return Insets{Top: n, Left: n, Bottom: n, Right: n}
}

// InsetsSymmetric returns insets of horizontal cells left and right and
// vertical lines above and below.
func InsetsSymmetric(horizontal, vertical int) Insets {
	return Insets{Top: vertical, Left: horizontal, Bottom: vertical, Right: horizontal}
}

// Walk visits root and its descendants depth-first in pre-order. Returning
// false from visit skips the children of the visited node.
func Walk(root Node, visit func(Node) bool) {
	if root == nil {
		return
	}
	if !visit(root) {
		return
	}
	if c, ok := root.(interface{ Children() []Node }); ok {
		for _, child := range c.Children() {
			Walk(child, visit)
		}
	}
}

// Offstage marks an element that takes part in updates but is never drawn,
// such as a display link. Embed it to make a type usable as a Node.
type Offstage struct{}

func (Offstage) isNode() {}
