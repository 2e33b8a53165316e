package cmd

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"outfitter/pkg/recommender"
)

var wardrobeCmd = &cobra.Command{
	Use:   "wardrobe [event]",
	Short: "Show the tops and bottoms available per event",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		events := appInstance.OutfitService.Categories()
		if len(args) == 1 {
			event, err := recommender.ParseCategory(args[0])
			if err != nil {
				return err
			}
			events = []recommender.Category{event}
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Event", "Tops", "Bottoms"})
		table.SetBorder(false)
		table.SetAutoWrapText(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, event := range events {
			w := appInstance.OutfitService.Wardrobe(event)
			table.Append([]string{
				w.Event,
				strings.Join(w.Tops, ", "),
				strings.Join(w.Bottoms, ", "),
			})
		}
		table.Render()
		return nil
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the supported event types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Event", "Default"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, event := range appInstance.OutfitService.Categories() {
			isDefault := ""
			if event == appInstance.DefaultEvent {
				isDefault = "yes"
			}
			table.Append([]string{event.String(), isDefault})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wardrobeCmd)
	rootCmd.AddCommand(eventsCmd)
}
