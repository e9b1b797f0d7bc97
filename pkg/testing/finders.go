package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/asciistats/pkg/view"
)

// Finder locates nodes in a view tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root view.Node) []view.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []view.Node
	finder Finder
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() view.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.description()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() view.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) view.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.description()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []view.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// Label returns the first match as a label. Panics if it is not one.
func (r FinderResult) Label() *view.Label {
	l, ok := r.First().(*view.Label)
	if !ok {
		panic(fmt.Sprintf("%s matched %T, not a label", r.description(), r.First()))
	}
	return l
}

// Button returns the first match as a button. Panics if it is not one.
func (r FinderResult) Button() *view.Button {
	b, ok := r.First().(*view.Button)
	if !ok {
		panic(fmt.Sprintf("%s matched %T, not a button", r.description(), r.First()))
	}
	return b
}

// Find evaluates finder against root.
func Find(root view.Node, finder Finder) FinderResult {
	return FinderResult{nodes: finder.Evaluate(root), finder: finder}
}

// --- Concrete finders ---

type predicateFinder struct {
	fn   func(view.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root view.Node) []view.Node {
	var out []view.Node
	view.Walk(root, func(n view.Node) bool {
		if f.fn(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder matching nodes accepted by fn.
func ByPredicate(desc string, fn func(view.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: desc}
}

// ByType returns a finder that matches nodes of type T.
func ByType[T view.Node]() Finder {
	t := reflect.TypeFor[T]()
	return ByPredicate(fmt.Sprintf("ByType(%s)", t), func(n view.Node) bool {
		return reflect.TypeOf(n) == t
	})
}

// ByText returns a finder that matches labels with exact text.
func ByText(text string) Finder {
	return ByPredicate(fmt.Sprintf("ByText(%q)", text), func(n view.Node) bool {
		l, ok := n.(*view.Label)
		return ok && l.Text() == text
	})
}

// ByTextContaining returns a finder that matches labels containing substring.
func ByTextContaining(substring string) Finder {
	return ByPredicate(fmt.Sprintf("ByTextContaining(%q)", substring), func(n view.Node) bool {
		l, ok := n.(*view.Label)
		return ok && strings.Contains(l.Text(), substring)
	})
}

// ByTitle returns a finder that matches buttons with the given title.
func ByTitle(title string) Finder {
	return ByPredicate(fmt.Sprintf("ByTitle(%q)", title), func(n view.Node) bool {
		b, ok := n.(*view.Button)
		return ok && b.Title() == title
	})
}
