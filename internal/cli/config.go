package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) configCommand() *cobra.Command {
	opts := newRenderOpts()
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective rendering configuration as TOML",
		Long: `Print the configuration that render would use after applying defaults,
the --config file and any style flags. The output can be saved and passed back
with --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolveConfig(cmd)
			if err != nil {
				return err
			}
			c.Logger.Debug("resolved config", "file", opts.configPath)
			return cfg.WriteTOML(cmd.OutOrStdout())
		},
	}
	opts.bindStyle(cmd)
	return cmd
}
