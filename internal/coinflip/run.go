// Package coinflip is the coin-flipping statistics demo: a run of fair coin
// flips shown as star histograms next to the ideal distribution.
package coinflip

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/go-drift/asciistats/pkg/core"
)

const (
	// DefaultBatch is the number of flips a batch schedules.
	DefaultBatch = 100
	// DefaultOutcomeGlyph draws observed outcomes.
	DefaultOutcomeGlyph = "*"
	// DefaultIdealGlyph draws the ideal distribution.
	DefaultIdealGlyph = "#"

	idealWidth = 10
)

// Options configures a new Run.
type Options struct {
	Seed         uint64
	Batch        int
	OutcomeGlyph string
	IdealGlyph   string
	FPS          int
}

func (o Options) withDefaults() Options {
	if o.Batch <= 0 {
		o.Batch = DefaultBatch
	}
	if o.OutcomeGlyph == "" {
		o.OutcomeGlyph = DefaultOutcomeGlyph
	}
	if o.IdealGlyph == "" {
		o.IdealGlyph = DefaultIdealGlyph
	}
	return o
}

// Run is the state of a flipping session.
//
// Run is a plain value: copying it copies the random source too, so a
// mutator applied to a copy never disturbs the original.
type Run struct {
	Heads  uint
	Tails  uint
	Cycles uint

	Flipping    bool
	FlippingEnd uint

	Batch        uint
	OutcomeGlyph string
	IdealGlyph   string

	src rand.PCG
}

// NewRun returns an empty run drawing from a source seeded with opts.Seed.
func NewRun(opts Options) Run {
	opts = opts.withDefaults()
	return Run{
		Batch:        uint(opts.Batch),
		OutcomeGlyph: opts.OutcomeGlyph,
		IdealGlyph:   opts.IdealGlyph,
		src:          *rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15),
	}
}

// Flip tosses the coin once.
func (r *Run) Flip() {
	switch rand.New(&r.src).IntN(2) {
	case 0:
		r.Heads++
	case 1:
		r.Tails++
	}
	r.Cycles++
}

// FlipBatch schedules Batch more flips, delivered one per tick.
func (r *Run) FlipBatch() {
	r.FlippingEnd = r.Cycles + r.Batch
	r.Flipping = true
}

// Tick flips once while a batch is pending. The first tick past the end of
// the batch clears Flipping instead.
func (r *Run) Tick() {
	if r.Flipping && r.Cycles <= r.FlippingEnd {
		r.Flip()
		return
	}
	r.Flipping = false
}

// FlipAction resolves the button action for a single flip.
func (r Run) FlipAction() core.Mutator[Run] { return (*Run).Flip }

// BatchAction resolves the button action for a batch of flips.
func (r Run) BatchAction() core.Mutator[Run] { return (*Run).FlipBatch }

// TickAction resolves the display link action.
func (r Run) TickAction() core.Mutator[Run] { return (*Run).Tick }

// IsTicking reports whether the display link should run.
func (r Run) IsTicking() bool { return r.Flipping }

// StarredHeads draws one outcome glyph per head.
func (r Run) StarredHeads() string { return strings.Repeat(r.OutcomeGlyph, int(r.Heads)) }

// StarredTails draws one outcome glyph per tail.
func (r Run) StarredTails() string { return strings.Repeat(r.OutcomeGlyph, int(r.Tails)) }

// IdealHeads draws the ideal share of heads.
func (r Run) IdealHeads() string { return strings.Repeat(r.IdealGlyph, idealWidth) }

// IdealTails draws the ideal share of tails.
func (r Run) IdealTails() string { return strings.Repeat(r.IdealGlyph, idealWidth) }

// HeadsCount formats the number of heads.
func (r Run) HeadsCount() string { return strconv.FormatUint(uint64(r.Heads), 10) }

// TailsCount formats the number of tails.
func (r Run) TailsCount() string { return strconv.FormatUint(uint64(r.Tails), 10) }

// Summary describes the run in one line.
func (r Run) Summary() string {
	s := "flips: " + strconv.FormatUint(uint64(r.Cycles), 10)
	if r.Flipping {
		s += " (flipping)"
	}
	return s
}
