package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ocean-fx/internal/canvas/svgcanvas"
	"ocean-fx/internal/sim"
)

func newSnapshotCmd(opts *options) *cobra.Command {
	var (
		hf  headlessFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the backdrop headless and write the last frame as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			doc := svgcanvas.New(cfg.Screen.Width, cfg.Screen.Height)
			doc.SetTitle(cfg.Screen.Title)

			so := hf.options()
			so.Canvas = doc
			sum, err := sim.Run(cmdContext(cmd), cfg, so)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating snapshot: %w", err)
				}
				defer f.Close()
				w = f
			}
			n, err := doc.WriteTo(w)
			if err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}
			slog.Info("snapshot written", "path", out, "bytes", n, "frames", sum.Frames,
				"ripples", sum.Ripples, "rings", sum.Rings)
			return nil
		},
	}
	hf.bind(cmd, 90)
	cmd.Flags().StringVarP(&out, "out", "o", "ocean.svg", "output file (- for stdout)")
	return cmd
}
