package main

import (
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"venuematch/internal/alias"
	"venuematch/internal/catalog"
)

func newAliasesCommand(ctx *commandContext) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "Show the alias index derived from the catalog",
		Long: `Build the alias index (generated acronyms plus curated overrides) for
the configured catalog and print it. Aliases claimed by more than one
venue are shown with every claimant; resolution reports those as
ambiguous.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := strings.TrimSpace(catalogPath)
			if path == "" {
				path = cfg.Catalog.Path
			}
			entries, err := catalog.Load(path)
			if err != nil {
				return err
			}
			overrides, err := ctx.loadOverrides(cfg)
			if err != nil {
				return err
			}

			index := alias.Build(entries, overrides)
			keys := make([]string, 0, len(index))
			for key := range index {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Alias", "Venues"})
			for _, key := range keys {
				names := make([]string, 0, len(index[key]))
				for _, entry := range index[key] {
					names = append(names, entry.Name)
				}
				t.AppendRow(table.Row{key, strings.Join(names, ", ")})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog file (default from config)")
	return cmd
}
