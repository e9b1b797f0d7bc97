package testbed

import (
	"strings"

	"github.com/go-drift/asciistats/pkg/core"
	"github.com/go-drift/asciistats/pkg/view"
	"github.com/go-drift/asciistats/pkg/widgets"
)

// Progress grows a bar by one cell per tick while Running, up to Width.
type Progress struct {
	Filled  int
	Width   int
	Running bool
}

func step(p *Progress) {
	if !p.Running {
		return
	}
	p.Filled++
	if p.Filled >= p.Width {
		p.Running = false
	}
}

func start(p *Progress) {
	if p.Filled < p.Width {
		p.Running = true
	}
}

// ProgressScreen shows the bar, a "Start" button and a display link that
// stops itself once the bar is full.
func ProgressScreen() core.Blueprint[*view.Screen, Progress] {
	return widgets.Screen[Progress]{
		Children: []widgets.Widget[Progress]{
			widgets.Label[Progress]{Text: Bar},
			widgets.Button[Progress]{Title: "Start", OnPress: core.Static(core.Mutator[Progress](start))},
			widgets.DisplayLink[Progress]{
				Active: func(p Progress) bool { return p.Running },
				Tick:   core.Static(core.Mutator[Progress](step)),
			},
		},
	}.Blueprint()
}

// Bar renders p as "[###..]".
func Bar(p Progress) string {
	return "[" + strings.Repeat("#", p.Filled) + strings.Repeat(".", max(p.Width-p.Filled, 0)) + "]"
}
