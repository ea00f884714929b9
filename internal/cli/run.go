package cli

import (
	"github.com/spf13/cobra"

	"ocean-fx/internal/app"
)

func newRunCmd(opts *options) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the backdrop in a window (needs -tags ebiten)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(opts.cfg, resolveSeed(seed))
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	return cmd
}
