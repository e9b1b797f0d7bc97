package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/asciistats/pkg/render"
)

// SnapshotOptions holds flags for the snapshot command.
type SnapshotOptions struct {
	SimulateOptions
	Out     string
	Padding int
}

// NewSnapshotCommand creates the snapshot command.
func NewSnapshotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SnapshotOptions{SimulateOptions: SimulateOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Simulate and save the final screen as an image",
		Long: `Run a simulation like "asciistats simulate" and rasterize the final
screen. The format follows the extension of --out (.png or .bmp).

Example:
  asciistats snapshot --out flips.png --batches 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, opts)
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "asciistats.png", "output file")
	cmd.Flags().IntVar(&opts.Padding, "padding", 8, "padding around the text in pixels")

	return cmd
}

func runSnapshot(cmd *cobra.Command, opts *SnapshotOptions) error {
	s, err := simulate(cmd, &opts.SimulateOptions)
	if err != nil {
		return err
	}
	defer s.close()

	f, err := os.Create(opts.Out)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	format := render.FormatFromPath(opts.Out)
	if err := render.Encode(f, s.visible(), format, render.ImageOptions{Padding: opts.Padding}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	s.logger.Info("snapshot written", "path", opts.Out, "format", string(format))
	return nil
}
