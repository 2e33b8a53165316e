package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"outfitter/internal/clix"
)

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest [event]",
	Short: "Suggest a random outfit for an event",
	Long: `Picks a random top and bottom that suit the event (Sports, Formal or Casual).
Without an event, the recommender.default_event setting is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get app from context: %w", err)
		}

		event, err := clix.ParseEvent(cmd.Flags(), args, appInstance.DefaultEvent)
		if err != nil {
			return err
		}
		count, err := clix.ParseCount(cmd.Flags(), appInstance.OutfitService.MaxCount())
		if err != nil {
			return err
		}

		suggestions, err := appInstance.OutfitService.SuggestMany(cmd.Context(), event, count)
		if err != nil {
			return fmt.Errorf("failed to suggest outfit: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Outfits for %s:\n", color.CyanString(event.String()))
		for _, s := range suggestions {
			fmt.Fprintf(out, "  Top: %s  Bottom: %s\n", color.GreenString(s.Top), color.YellowString(s.Bottom))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().StringP("event", "e", "", "Event type (sports, formal, casual)")
	suggestCmd.Flags().IntP("count", "n", 1, "Number of outfits to suggest")
}
