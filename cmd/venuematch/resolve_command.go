package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"venuematch/internal/catalog"
	"venuematch/internal/resolve"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var (
		catalogPath    string
		message        string
		proposedName   string
		proposedID     string
		locationMode   string
		onlineURL      string
		customLocation bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Run one resolution against the catalog and print the decision",
		Long: `Run the venue resolution pipeline once and print which of the five
outcomes it produced. Useful for troubleshooting why a message did or
did not match a venue.

Examples:
  venuematch resolve --message "open mic at ltb tonight"
  venuematch resolve --name "The Rusty Mic" --id stale-123
  venuematch resolve --mode online --online-url https://example.com/stream`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
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

			resolver := resolve.New(cfg.Policy(), overrides, logger)
			outcome := resolver.Resolve(resolve.Input{
				ProposedID:     proposedID,
				ProposedName:   proposedName,
				Message:        message,
				Catalog:        entries,
				LocationMode:   resolve.LocationMode(locationMode),
				OnlineURL:      onlineURL,
				CustomLocation: customLocation,
			})
			printOutcome(cmd.OutOrStdout(), outcome)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog file (default from config)")
	cmd.Flags().StringVar(&message, "message", "", "raw user message text")
	cmd.Flags().StringVar(&proposedName, "name", "", "proposed venue name")
	cmd.Flags().StringVar(&proposedID, "id", "", "proposed venue id")
	cmd.Flags().StringVar(&locationMode, "mode", "venue", "location mode: venue, online, or custom")
	cmd.Flags().StringVar(&onlineURL, "online-url", "", "online event URL")
	cmd.Flags().BoolVar(&customLocation, "custom-location", false, "proposed name came from a free-text location field")
	return cmd
}

func printOutcome(w io.Writer, outcome resolve.Outcome) {
	switch o := outcome.(type) {
	case resolve.Resolved:
		fmt.Fprintf(w, "resolved: %s (id=%s) confidence=%.2f source=%s\n",
			o.VenueName, o.VenueID, o.Confidence, o.Source)
	case resolve.Ambiguous:
		fmt.Fprintf(w, "ambiguous: %d venues plausibly match %q\n", len(o.Candidates), o.InputName)
		renderCandidates(w, o.Candidates)
	case resolve.Unresolved:
		if o.InputName != "" {
			fmt.Fprintf(w, "unresolved: no catalog venue matches %q\n", o.InputName)
		} else {
			fmt.Fprintln(w, "unresolved: no venue reference found")
		}
	case resolve.OnlineExplicit:
		fmt.Fprintln(w, "online_explicit: event is online; no venue applies")
	case resolve.CustomLocation:
		fmt.Fprintln(w, "custom_location: free-text location kept as-is")
	}
}
