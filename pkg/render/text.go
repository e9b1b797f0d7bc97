// Package render draws view trees for terminals and image snapshots.
//
// Layout is deliberately simple: every node becomes a block of text lines,
// vertical stacks concatenate blocks and horizontal stacks place them side by
// side, aligned at the top.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/go-drift/asciistats/pkg/view"
)

// Lines renders node into text lines without trailing spaces.
func Lines(node view.Node) []string {
	block := renderNode(node)
	for i, line := range block {
		block[i] = strings.TrimRight(line, " ")
	}
	return block
}

// Text renders node as a single newline-terminated string.
func Text(node view.Node) string {
	lines := Lines(node)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func renderNode(node view.Node) []string {
	switch n := node.(type) {
	case *view.Screen:
		return renderScreen(n)
	case *view.Stack:
		return renderStack(n)
	case *view.Label:
		return []string{renderLabel(n)}
	case *view.Button:
		return []string{renderButton(n)}
	default:
		return nil
	}
}

func renderScreen(s *view.Screen) []string {
	var out []string
	if s.Title != "" {
		out = append(out, "== "+s.Title+" ==", "")
	}
	return append(out, renderStack(&s.Stack)...)
}

func renderLabel(l *view.Label) string {
	text := l.Text()
	pad := l.MinWidth - width(text)
	if pad > 0 {
		switch l.Align {
		case view.AlignCenter:
			left := pad / 2
			text = strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
		case view.AlignTrailing:
			text = strings.Repeat(" ", pad) + text
		default:
			text += strings.Repeat(" ", pad)
		}
	}
	if l.Emphasis == view.EmphasisTitle {
		return strings.ToUpper(text)
	}
	return text
}

func renderButton(b *view.Button) string {
	if b.Enabled() {
		return "[ " + b.Title() + " ]"
	}
	return "( " + b.Title() + " )"
}

func renderStack(s *view.Stack) []string {
	var blocks [][]string
	for _, child := range s.Children() {
		if block := renderNode(child); len(block) > 0 {
			blocks = append(blocks, block)
		}
	}

	var body []string
	if s.Axis == view.Horizontal {
		body = joinHorizontal(blocks, s.Spacing)
	} else {
		body = joinVertical(blocks, s.Spacing)
	}
	if len(body) == 0 {
		return nil
	}

	m := s.Margins
	out := make([]string, 0, len(body)+m.Top+m.Bottom)
	for i := 0; i < m.Top; i++ {
		out = append(out, "")
	}
	indent := strings.Repeat(" ", max(m.Left, 0))
	for _, line := range body {
		out = append(out, indent+line)
	}
	for i := 0; i < m.Bottom; i++ {
		out = append(out, "")
	}
	return out
}

func joinVertical(blocks [][]string, spacing int) []string {
	var out []string
	for i, block := range blocks {
		if i > 0 {
			for j := 0; j < spacing; j++ {
				out = append(out, "")
			}
		}
		out = append(out, block...)
	}
	return out
}

func joinHorizontal(blocks [][]string, spacing int) []string {
	height := 0
	widths := make([]int, len(blocks))
	for i, block := range blocks {
		height = max(height, len(block))
		for _, line := range block {
			widths[i] = max(widths[i], width(line))
		}
	}

	gap := strings.Repeat(" ", max(spacing, 0))
	out := make([]string, height)
	for row := 0; row < height; row++ {
		var sb strings.Builder
		for i, block := range blocks {
			if i > 0 {
				sb.WriteString(gap)
			}
			line := ""
			if row < len(block) {
				line = block[row]
			}
			sb.WriteString(line)
			if i < len(blocks)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-width(line)))
			}
		}
		out[row] = sb.String()
	}
	return out
}

func width(s string) int {
	return utf8.RuneCountInString(s)
}
