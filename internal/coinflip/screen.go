package coinflip

import (
	"strconv"

	"github.com/go-drift/asciistats/pkg/clock"
	"github.com/go-drift/asciistats/pkg/core"
	"github.com/go-drift/asciistats/pkg/view"
	"github.com/go-drift/asciistats/pkg/widgets"
)

// Button titles, also used by hosts to map keys to controls.
const (
	TitleFlip = "Flip Once"
	TitleHelp = "Help"
	TitleBack = "Back"
)

// BatchTitle is the title of the batch button for a batch size.
func BatchTitle(batch int) string {
	if batch <= 0 {
		batch = DefaultBatch
	}
	return "Flip " + strconv.Itoa(batch) + " Times"
}

var margins = view.Insets{Left: 2}

// Screen returns the main screen: the observed distribution, the ideal
// distribution, the flip controls and the display link driving batches.
func Screen(opts Options) core.Blueprint[*view.Screen, Run] {
	opts = opts.withDefaults()
	return widgets.Screen[Run]{
		Title: "ASCIIStats",
		Children: []widgets.Widget[Run]{
			distribution("Outcome Distribution", Run.HeadsCount, Run.StarredHeads, Run.TailsCount, Run.StarredTails),
			distribution("True Probabilities", nil, Run.IdealHeads, nil, Run.IdealTails),
			widgets.Label[Run]{Text: Run.Summary},
			widgets.RowOf[Run](
				widgets.Button[Run]{Title: TitleFlip, OnPress: Run.FlipAction},
				widgets.Button[Run]{
					Title:   BatchTitle(opts.Batch),
					OnPress: Run.BatchAction,
					Enabled: func(r Run) bool { return !r.Flipping },
				},
				widgets.Link[Run]{Title: TitleHelp, Destination: HelpScreen(opts)},
			),
			widgets.DisplayLink[Run]{
				Active: Run.IsTicking,
				Tick:   Run.TickAction,
				FPS:    clock.Rate(opts.FPS),
			},
		},
	}.Blueprint()
}

func distribution(title string, headsCount, heads, tailsCount, tails func(Run) string) widgets.Widget[Run] {
	return widgets.Column[Run]{
		Children: []widgets.Widget[Run]{
			widgets.TitleOf[Run](title),
			outcomeRow("Heads", headsCount, heads),
			outcomeRow("Tails", tailsCount, tails),
		},
		Margins: margins,
	}
}

func outcomeRow(name string, count, bar func(Run) string) widgets.Widget[Run] {
	children := []widgets.Widget[Run]{widgets.Text[Run]{Content: name, MinWidth: 5}}
	if count != nil {
		children = append(children, widgets.Label[Run]{Text: count, MinWidth: 4, Align: view.AlignTrailing})
	}
	children = append(children, widgets.Label[Run]{Text: bar})
	return widgets.RowOf(children...)
}

// HelpScreen explains the controls. It stays in sync with the run while it
// is shown.
func HelpScreen(opts Options) core.Blueprint[*view.Screen, Run] {
	opts = opts.withDefaults()
	return widgets.Screen[Run]{
		Title: TitleHelp,
		Children: []widgets.Widget[Run]{
			widgets.Padding[Run]{
				Padding: margins,
				Child: widgets.ColumnOf[Run](
					widgets.Text[Run]{Content: "f  flip the coin once"},
					widgets.Text[Run]{Content: "b  flip " + strconv.Itoa(opts.Batch) + " times, one per tick"},
					widgets.Text[Run]{Content: "?  show this screen"},
					widgets.Text[Run]{Content: "<  go back"},
					widgets.Text[Run]{Content: "q  quit"},
				),
			},
			widgets.Label[Run]{Text: Run.Summary},
			widgets.Back[Run]{Title: TitleBack},
		},
	}.Blueprint()
}
