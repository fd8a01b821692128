package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"venuematch/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and edit the venue catalog file",
	}
	cmd.AddCommand(newCatalogListCommand(ctx), newCatalogAddCommand(ctx))
	return cmd
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		Args:  cobra.NoArgs,
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

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ID", "Name", "Slug"})
			for _, entry := range entries {
				t.AppendRow(table.Row{entry.ID, entry.Name, entry.MatchSlug()})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog file (default from config)")
	return cmd
}

func newCatalogAddCommand(ctx *commandContext) *cobra.Command {
	var (
		catalogPath string
		name        string
		slug        string
		id          string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a venue to the catalog file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("--name is required")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := strings.TrimSpace(catalogPath)
			if path == "" {
				path = cfg.Catalog.Path
			}
			entry := catalog.Entry{
				ID:   strings.TrimSpace(id),
				Name: strings.TrimSpace(name),
				Slug: strings.TrimSpace(slug),
			}
			if entry.ID == "" {
				entry.ID = uuid.NewString()
			}
			if err := catalog.Append(path, entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (id=%s, slug=%s)\n", entry.Name, entry.ID, entry.MatchSlug())
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog file (default from config)")
	cmd.Flags().StringVar(&name, "name", "", "venue name")
	cmd.Flags().StringVar(&slug, "slug", "", "venue slug (derived from the name when omitted)")
	cmd.Flags().StringVar(&id, "id", "", "venue id (generated when omitted)")
	return cmd
}
