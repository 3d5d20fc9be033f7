package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

var taxRenderer = &OutputRenderer[alldressed.Tax]{
	Columns: []column[alldressed.Tax]{
		{Header: "Name", Value: func(t *alldressed.Tax) string { return t.String("name") }},
		{Header: "Rate", Value: func(t *alldressed.Tax) string { return strconv.FormatFloat(t.Rate(), 'f', -1, 64) + "%" }},
	},
	NoItemsMsg: "No taxes apply.",
}

var tagRenderer = &OutputRenderer[alldressed.Tag]{
	Columns: []column[alldressed.Tag]{
		{Header: "ID", Value: func(t *alldressed.Tag) string { return t.ID() }},
		{Header: "Name", Value: func(t *alldressed.Tag) string { return t.Name() }},
	},
	NoItemsMsg: "No tags found.",
}

// NewTaxesCommand creates the taxes command group
func NewTaxesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "taxes",
		Aliases: []string{"tax"},
		Short:   "Inspect shipping taxes",
		Long:    "Compute the taxes applied to shipping at a location",
	}

	cmd.AddCommand(newTaxesGetCommand())

	return cmd
}

func newTaxesGetCommand() *cobra.Command {
	var country, state, city, postcode string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get shipping taxes",
		Long:  "Display the taxes applied to shipping at the given location",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			taxes, err := client.Taxes().
				ForCountry(country).
				ForState(state).
				ForCity(city).
				ForPostcode(postcode).
				Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get taxes: %w", err)
			}

			return taxRenderer.Render(cmd, taxes)
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "ISO 3166 country code")
	cmd.Flags().StringVar(&state, "state", "", "state or province code")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&postcode, "postcode", "", "postal code")
	_ = cmd.MarkFlagRequired("country")

	return cmd
}

// NewTagsCommand creates the tags command group
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Inspect tags",
		Long:    "List the tags of the account",
	}

	cmd.AddCommand(newTagsListCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Long:  "List the tags that can be set on orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tags, err := client.Tags().Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}

			return tagRenderer.Render(cmd, tags)
		},
	}
}
