package view

// Label displays a single line of text.
type Label struct {
	text     string
	revision int

	// Align positions the text inside MinWidth.
	Align Align
	// MinWidth is the minimum width in cells; shorter text is padded.
	MinWidth int
	// Emphasis selects the text style.
	Emphasis Emphasis
}

func (*Label) isNode() {}

// NewLabel creates a label showing text.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// Text returns the displayed text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the displayed text. Setting the same text again is not
// counted as a change.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.revision++
}

// Revision counts how many times the displayed text changed.
func (l *Label) Revision() int {
	return l.revision
}
