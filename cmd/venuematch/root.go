package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	cmd := &cobra.Command{
		Use:           "venuematch",
		Short:         "Resolve free-text venue references against a venue catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&ctx.configPath, "config", "", "path to config file (default ~/.config/venuematch/config.toml)")
	cmd.PersistentFlags().StringVar(&ctx.logLevel, "log-level", "", "override configured log level")

	cmd.AddCommand(
		newResolveCommand(ctx),
		newGateCommand(ctx),
		newAliasesCommand(ctx),
		newCatalogCommand(ctx),
		newConfigCommand(ctx),
	)
	return cmd
}
