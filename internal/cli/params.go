package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newParamsCmd(opts *options) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the effective parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if asYAML {
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(opts.cfg); err != nil {
					return fmt.Errorf("encoding config: %w", err)
				}
				return enc.Close()
			}
			for _, g := range opts.cfg.Parameters().Groups {
				fmt.Fprintf(w, "[%s]\n", g.Name)
				for _, p := range g.Params {
					fmt.Fprintf(w, "  %-22s %s\n", p.Key, p.Value)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the full configuration as YAML")
	return cmd
}
