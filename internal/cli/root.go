// Package cli wires the ocean commands together.
package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"ocean-fx/internal/config"
)

// options carries the persistent flags and the configuration they resolve to.
type options struct {
	configPath string
	logFormat  string
	logLevel   string

	cfg *config.Config
}

// NewRootCmd builds the ocean command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "ocean",
		Short:         "Animated ocean backdrop with pointer ripples and surface rings",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to config.yaml (empty = use defaults)")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	config.Default().Bind(pf)

	root.AddCommand(
		newRunCmd(opts),
		newSimulateCmd(opts),
		newSnapshotCmd(opts),
		newParamsCmd(opts),
	)
	return root
}

func (o *options) setup(cmd *cobra.Command) error {
	logger, err := newLogger(cmd.ErrOrStderr(), o.logFormat, o.logLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

// resolveSeed turns the zero seed into a time-based one.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
