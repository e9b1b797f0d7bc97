// Package testbed provides internal test screens for the testing framework.
package testbed

import (
	"fmt"

	"github.com/go-drift/asciistats/pkg/core"
	"github.com/go-drift/asciistats/pkg/view"
	"github.com/go-drift/asciistats/pkg/widgets"
)

// Counter is the state of a screen that displays a count and increments it
// on tap.
type Counter struct {
	Count     int
	Increment core.Mutator[Counter]
}

// NewCounter returns a counter starting at initial.
func NewCounter(initial int) Counter {
	return Counter{Count: initial, Increment: func(c *Counter) { c.Count++ }}
}

// CounterScreen shows the count and an "Increment" button.
func CounterScreen() core.Blueprint[*view.Screen, Counter] {
	return widgets.Screen[Counter]{
		Title: "Counter",
		Children: []widgets.Widget[Counter]{
			widgets.Label[Counter]{Text: func(c Counter) string { return fmt.Sprintf("%d", c.Count) }},
			widgets.Button[Counter]{
				Title:   "Increment",
				OnPress: func(c Counter) core.Mutator[Counter] { return c.Increment },
			},
		},
	}.Blueprint()
}
