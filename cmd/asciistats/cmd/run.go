package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/go-drift/asciistats/internal/coinflip"
	"github.com/go-drift/asciistats/pkg/navigation"
	"github.com/go-drift/asciistats/pkg/render"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	MetricsAddr string
	FPS         int
}

// NewRunCommand creates the interactive run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Flip coins interactively",
		Long: `Show the coin-flip screen and read commands from standard input.

Keys (followed by Enter):
  f   flip once
  b   flip a batch, one flip per clock tick
  ?   show help
  <   go back
  q   quit

Example:
  asciistats run
  asciistats run --metrics-addr :9102 --fps 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	cmd.Flags().IntVar(&opts.FPS, "fps", 0, "tick rate while flipping a batch (default from config)")

	return cmd
}

func runInteractive(cmd *cobra.Command, opts *RunOptions) error {
	logger := opts.logger(cmd.ErrOrStderr())
	resolved, err := opts.resolveConfig()
	if err != nil {
		return err
	}
	addr := opts.MetricsAddr
	if addr == "" {
		addr = resolved.MetricsAddr
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	s := newSession(sessionConfig{resolved: resolved, logger: logger, registry: reg, fps: opts.FPS})
	defer s.close()

	out := cmd.OutOrStdout()
	screen := newScreenWriter(out)
	draw := func() { screen.draw(render.Text(s.visible())) }
	s.observe(func(_, _ coinflip.Run) { draw() })
	s.nav.AddObserver(navigation.ObserverFuncs{
		OnPush: func(any, int) { draw() },
		OnPop:  func(any, int) { draw() },
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if addr != "" {
		srv := &http.Server{
			Addr:              addr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("serving metrics", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed", "err", err)
			}
		}()
		defer srv.Close()
	}

	// Input arrives on its own goroutine and hops onto the loop.
	quitWhenIdle := false
	s.observe(func(prev, next coinflip.Run) {
		if quitWhenIdle && prev.Flipping && !next.Flipping {
			s.loop.Stop()
		}
	})
	go readKeys(cmd.InOrStdin(), func(key rune) {
		s.loop.Dispatch(func() {
			switch c, title := keyCommand(key, s.opts.Batch); c {
			case commandPress:
				s.press(title)
			case commandQuit:
				s.loop.Stop()
			}
		})
	}, func() {
		s.loop.Dispatch(func() {
			quitWhenIdle = true
			if !s.instrument.State().Flipping {
				s.loop.Stop()
			}
		})
	})

	draw()
	if err := s.loop.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	fmt.Fprintf(out, "%s\n", s.instrument.State().Summary())
	return nil
}

// readKeys delivers every non-space rune of every input line, then calls
// done at end of input.
func readKeys(r io.Reader, key func(rune), done func()) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			key('f')
			continue
		}
		for _, k := range line {
			if k != ' ' && k != '\t' {
				key(k)
			}
		}
	}
	done()
}

// screenWriter redraws frames, clearing the terminal first when writing to
// one.
type screenWriter struct {
	w        io.Writer
	terminal bool
	last     string
}

func newScreenWriter(w io.Writer) *screenWriter {
	terminal := false
	if f, ok := w.(*os.File); ok {
		terminal = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &screenWriter{w: w, terminal: terminal}
}

func (sw *screenWriter) draw(frame string) {
	if frame == sw.last {
		return
	}
	sw.last = frame
	if sw.terminal {
		io.WriteString(sw.w, "\x1b[H\x1b[2J")
	} else {
		io.WriteString(sw.w, "\n")
	}
	io.WriteString(sw.w, frame)
}
