// Package widgets provides the leaf and container blueprints applications
// compose screens from.
//
// # Widget Construction
//
// Widgets are configured with struct literals and turned into blueprints
// with Blueprint():
//
//	count := widgets.Label[Counter]{
//	    Text:     func(c Counter) string { return strconv.Itoa(c.Count) },
//	    MinWidth: 4,
//	    Align:    view.AlignTrailing,
//	}
//
// Layout helpers exist for the containers:
//
//	widgets.ColumnOf[Counter](title, count, button)
//	widgets.RowOf[Counter](left, right)
//
// # Actions
//
// Button hosts an Action. The action holds an accessor, not a mutator, and
// resolves it against the live state each time the button is pressed:
//
//	widgets.Button[Counter]{
//	    Title:   "Increment",
//	    OnPress: func(c Counter) core.Mutator[Counter] { return c.Increment },
//	}
//
// # Display Links
//
// DisplayLink wraps a periodic clock. It starts when its Active flag goes
// from false to true and stops on the opposite edge; there is no other way
// to start or stop it.
package widgets

import (
	"github.com/go-drift/asciistats/pkg/core"
	"github.com/go-drift/asciistats/pkg/view"
)

// Widget is anything that can produce a node blueprint.
type Widget[S any] interface {
	Blueprint() core.Blueprint[view.Node, S]
}

// Raw wraps a hand-written blueprint so it can be used as a child widget.
type Raw[S any] struct {
	Build core.Blueprint[view.Node, S]
}

// Blueprint returns the wrapped blueprint.
func (w Raw[S]) Blueprint() core.Blueprint[view.Node, S] {
	return w.Build
}

func blueprints[S any](children []Widget[S]) []core.Blueprint[view.Node, S] {
	out := make([]core.Blueprint[view.Node, S], 0, len(children))
	for _, c := range children {
		if c != nil {
			out = append(out, c.Blueprint())
		}
	}
	return out
}
