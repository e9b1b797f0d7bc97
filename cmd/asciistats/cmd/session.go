package cmd

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-drift/asciistats/cmd/asciistats/internal/config"
	"github.com/go-drift/asciistats/internal/coinflip"
	"github.com/go-drift/asciistats/pkg/clock"
	"github.com/go-drift/asciistats/pkg/core"
	"github.com/go-drift/asciistats/pkg/instrument"
	"github.com/go-drift/asciistats/pkg/navigation"
	"github.com/go-drift/asciistats/pkg/platform"
	"github.com/go-drift/asciistats/pkg/view"
)

// session wires a coin-flip instrument to an event loop, real clocks and a
// navigation stack.
type session struct {
	logger     *slog.Logger
	opts       coinflip.Options
	loop       *platform.Loop
	nav        *navigation.Stack
	instrument *instrument.Instrument[*view.Screen, coinflip.Run]

	observers    []func(prev, next coinflip.Run)
	restoreClock clock.Factory
}

type sessionConfig struct {
	resolved *config.Resolved
	logger   *slog.Logger
	registry prometheus.Registerer
	// fps overrides the configured rate when positive.
	fps int
}

func newSession(sc sessionConfig) *session {
	opts := sc.resolved.Options()
	if sc.fps > 0 {
		opts.FPS = sc.fps
	}
	if !sc.resolved.SeedSet {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	s := &session{
		logger: sc.logger,
		opts:   opts,
		loop:   platform.NewLoop(0),
		nav:    navigation.NewStack(nil),
	}
	platform.RegisterDispatch(s.loop)
	s.restoreClock = clock.SetDefaultFactory(clock.TickerFactory(s.loop))

	metrics := coinflip.NewMetrics(sc.registry)
	s.observe(metrics.Observe)

	screen := core.Observe(coinflip.Screen(opts), s.notify)
	s.instrument = instrument.New(coinflip.NewRun(opts), screen,
		instrument.WithNavigator(s.nav),
		instrument.WithLogger(sc.logger),
		instrument.WithMetrics(instrument.NewMetrics(sc.registry)),
	)
	s.nav.SetRoot(s.instrument.Element())

	sc.logger.Info("session started",
		"instrument", s.instrument.ID(),
		"seed", opts.Seed,
		"batch", opts.Batch,
		"fps", clock.Rate(opts.FPS),
	)
	return s
}

// observe registers fn to run after every propagated update.
func (s *session) observe(fn func(prev, next coinflip.Run)) {
	s.observers = append(s.observers, fn)
}

func (s *session) notify(prev, next coinflip.Run) {
	for _, fn := range s.observers {
		fn(prev, next)
	}
}

// visible returns the screen on top of the navigation stack.
func (s *session) visible() view.Node {
	if n, ok := s.nav.Top().(view.Node); ok {
		return n
	}
	return s.instrument.Element()
}

// press presses the enabled button titled title on the visible screen.
func (s *session) press(title string) bool {
	var target *view.Button
	view.Walk(s.visible(), func(n view.Node) bool {
		if b, ok := n.(*view.Button); ok && b.Title() == title {
			target = b
			return false
		}
		return target == nil
	})
	if target == nil {
		s.logger.Debug("no such control on the visible screen", "title", title)
		return false
	}
	return target.Press()
}

func (s *session) close() {
	s.instrument.Close()
	s.loop.Stop()
	clock.SetDefaultFactory(s.restoreClock)
	platform.RegisterDispatch(nil)
	s.logger.Debug("session closed", "flips", s.instrument.State().Cycles)
}
