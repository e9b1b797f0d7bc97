package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/go-drift/asciistats/internal/coinflip"
	"github.com/go-drift/asciistats/pkg/render"
)

// SimulateOptions holds flags for the simulate and snapshot commands.
type SimulateOptions struct {
	*RootOptions
	Flips   int
	Batches int
	FPS     int
	Timeout time.Duration
}

func (o *SimulateOptions) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.Flips, "flips", 0, "single flips to perform first")
	cmd.Flags().IntVar(&o.Batches, "batches", 1, "batches to flip, one after another")
	cmd.Flags().IntVar(&o.FPS, "fps", 1000, "tick rate while flipping a batch")
	cmd.Flags().DurationVar(&o.Timeout, "timeout", time.Minute, "give up after this long")
}

// NewSimulateCommand creates the headless simulate command.
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SimulateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Flip coins without interaction and print the final screen",
		Long: `Press the flip controls programmatically, let every batch run to
completion on the display link and print the final screen.

Example:
  asciistats simulate --batches 3
  asciistats simulate --flips 10 --batches 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := simulate(cmd, opts)
			if err != nil {
				return err
			}
			defer s.close()
			_, err = fmt.Fprint(cmd.OutOrStdout(), render.Text(s.visible()))
			return err
		},
	}
	opts.bind(cmd)

	return cmd
}

// simulate runs the requested flips to completion. The returned session is
// idle; callers must close it.
func simulate(cmd *cobra.Command, opts *SimulateOptions) (*session, error) {
	if opts.Flips < 0 || opts.Batches < 0 {
		return nil, fmt.Errorf("flips and batches must not be negative")
	}
	logger := opts.logger(cmd.ErrOrStderr())
	resolved, err := opts.resolveConfig()
	if err != nil {
		return nil, err
	}

	s := newSession(sessionConfig{
		resolved: resolved,
		logger:   logger,
		registry: prometheus.NewRegistry(),
		fps:      opts.FPS,
	})

	for range opts.Flips {
		s.press(coinflip.TitleFlip)
	}

	remaining := opts.Batches
	startBatch := func() {
		remaining--
		s.press(coinflip.BatchTitle(s.opts.Batch))
	}
	s.observe(func(prev, next coinflip.Run) {
		if !prev.Flipping || next.Flipping {
			return
		}
		if remaining > 0 {
			// Presses issued during an update are deferred by the
			// instrument; queue the next batch on the loop instead.
			go s.loop.Dispatch(startBatch)
			return
		}
		s.loop.Stop()
	})
	if remaining == 0 {
		return s, nil
	}
	startBatch()

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
	defer cancel()
	if err := s.loop.Run(ctx); err != nil {
		s.close()
		return nil, fmt.Errorf("simulation did not finish: %w", err)
	}
	return s, nil
}
