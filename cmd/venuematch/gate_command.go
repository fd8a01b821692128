package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"venuematch/internal/resolve"
)

func newGateCommand(ctx *commandContext) *cobra.Command {
	var (
		mode           string
		locationIntent bool
		draftVenueID   string
		draftVenueName string
		draftCustom    string
		draftOnlineURL string
	)

	cmd := &cobra.Command{
		Use:   "gate",
		Short: "Check whether resolution would run for a request",
		Long: `Evaluate the resolution gate for a request mode and draft state.
Creation always resolves; series edits resolve only when location intent
or an existing location signal is present.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := resolve.DraftLocation{
				VenueID:    draftVenueID,
				VenueName:  draftVenueName,
				CustomName: draftCustom,
				OnlineURL:  draftOnlineURL,
			}
			if resolve.ShouldResolve(resolve.Mode(mode), locationIntent, draft) {
				fmt.Fprintln(cmd.OutOrStdout(), "resolve: the pipeline would run")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "skip: the pipeline would not run")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(resolve.ModeCreate), "request mode: create or edit-series")
	cmd.Flags().BoolVar(&locationIntent, "location-intent", false, "message shows location intent")
	cmd.Flags().StringVar(&draftVenueID, "draft-venue-id", "", "venue id already on the draft")
	cmd.Flags().StringVar(&draftVenueName, "draft-venue-name", "", "venue name already on the draft")
	cmd.Flags().StringVar(&draftCustom, "draft-custom-location", "", "custom location already on the draft")
	cmd.Flags().StringVar(&draftOnlineURL, "draft-online-url", "", "online URL already on the draft")
	return cmd
}
