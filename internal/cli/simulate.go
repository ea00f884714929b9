package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"ocean-fx/internal/sim"
	"ocean-fx/internal/telemetry"
)

type headlessFlags struct {
	frames int
	seed   int64
	path   string
	moves  int
}

func (h *headlessFlags) bind(cmd *cobra.Command, frames int) {
	cmd.Flags().IntVar(&h.frames, "frames", frames, "frames to simulate")
	cmd.Flags().Int64Var(&h.seed, "seed", 0, "RNG seed (0 = time-based)")
	cmd.Flags().StringVar(&h.path, "path", "circle", "synthetic pointer path")
	cmd.Flags().IntVar(&h.moves, "moves", 1, "pointer events per frame")
}

func (h *headlessFlags) options() sim.Options {
	return sim.Options{
		Frames:        h.frames,
		Seed:          resolveSeed(h.seed),
		Path:          h.path,
		MovesPerFrame: h.moves,
	}
}

func newSimulateCmd(opts *options) *cobra.Command {
	var (
		hf        headlessFlags
		outputDir string
		logStats  bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the backdrop headless and record window statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt)
			defer stop()

			om, err := telemetry.NewOutputManager(outputDir)
			if err != nil {
				return err
			}
			defer om.Close()

			so := hf.options()
			so.Output = om
			so.LogStats = logStats
			slog.Info("starting headless simulation", "frames", so.Frames, "path", so.Path, "seed", so.Seed)

			sum, err := sim.Run(ctx, opts.cfg, so)
			if err != nil {
				return err
			}
			slog.Info("simulation finished",
				"frames", sum.Frames,
				"sim_ms", int(sum.TimeMS),
				"ripples_spawned", sum.Counters.RipplesSpawned,
				"rings_spawned", sum.Counters.RingsSpawned,
				"ripples_live", sum.Ripples,
				"rings_live", sum.Rings,
				"windows", sum.Windows,
				"output", om.Dir(),
			)
			return nil
		},
	}
	hf.bind(cmd, 600)
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for stats.csv and config.yaml")
	cmd.Flags().BoolVar(&logStats, "log-stats", false, "log each stats window")
	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
