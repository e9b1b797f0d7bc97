package view

// Stack arranges children along an axis in insertion order.
type Stack struct {
	children []Node

	// Axis is the layout direction.
	Axis Axis
	// Spacing is the number of blank cells between children.
	Spacing int
	// Margins surround the stack's content.
	Margins Insets
}

func (*Stack) isNode() {}

// NewStack creates an empty stack.
func NewStack(axis Axis) *Stack {
	return &Stack{Axis: axis}
}

// Append inserts nodes after the existing children.
func (s *Stack) Append(nodes ...Node) {
	for _, n := range nodes {
		if n != nil {
			s.children = append(s.children, n)
		}
	}
}

// Replace swaps all children for nodes.
func (s *Stack) Replace(nodes ...Node) {
	s.children = nil
	s.Append(nodes...)
}

// Children returns the children in insertion order.
func (s *Stack) Children() []Node {
	return s.children
}

// Screen is the root container of one navigable page.
type Screen struct {
	Stack

	// Title names the screen in navigation and rendered headers.
	Title string
}

// NewScreen creates an empty vertical screen.
func NewScreen(title string) *Screen {
	return &Screen{Stack: Stack{Axis: Vertical, Spacing: 1}, Title: title}
}
