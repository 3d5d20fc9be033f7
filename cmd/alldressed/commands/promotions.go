package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

var discountRenderer = &OutputRenderer[alldressed.Discount]{
	Columns: []column[alldressed.Discount]{
		{Header: "ID", Value: func(d *alldressed.Discount) string { return d.ID() }},
		{Header: "Code", Value: func(d *alldressed.Discount) string { return d.Code() }},
		{Header: "Values", Value: func(d *alldressed.Discount) string { return formatInt(len(d.Values)) }},
		{Header: "Free Items", Value: func(d *alldressed.Discount) string { return formatInt(len(d.Items)) }},
	},
	NoItemsMsg: "No discounts found.",
}

var giftCardRenderer = &OutputRenderer[alldressed.GiftCard]{
	Columns: []column[alldressed.GiftCard]{
		{Header: "ID", Value: func(g *alldressed.GiftCard) string { return g.ID() }},
		{Header: "Code", Value: func(g *alldressed.GiftCard) string { return g.Code() }},
		{Header: "Balance", Value: func(g *alldressed.GiftCard) string { return formatInt(g.Balance()) }},
		{Header: "Currency", Value: func(g *alldressed.GiftCard) string { return currencyCode(g.Currency) }},
	},
	NoItemsMsg: "No gift cards found.",
}

// NewDiscountsCommand creates the discounts command group
func NewDiscountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "discounts",
		Aliases: []string{"discount"},
		Short:   "Inspect discount codes",
		Long:    "Display a discount code, optionally as seen by a customer",
	}

	cmd.AddCommand(newDiscountsGetCommand())

	return cmd
}

func newDiscountsGetCommand() *cobra.Command {
	var customer string

	cmd := &cobra.Command{
		Use:   "get CODE",
		Short: "Get discount details",
		Long:  "Display the values and free items of a discount code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			builder := client.Discounts().ForCode(args[0])
			if customer != "" {
				builder = builder.ForCustomer(customer)
			}

			discount, err := builder.First(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get discount: %w", err)
			}

			if discount == nil {
				return fmt.Errorf("%w: %s", alldressed.ErrDiscountNotFound, args[0])
			}

			return discountRenderer.RenderOne(cmd, discount)
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "check the code for this customer")

	return cmd
}

// NewGiftCardsCommand creates the gift-cards command group
func NewGiftCardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gift-cards",
		Aliases: []string{"gift-card", "giftcards"},
		Short:   "Inspect gift cards",
		Long:    "Display the balance of a gift card",
	}

	cmd.AddCommand(newGiftCardsGetCommand())

	return cmd
}

func newGiftCardsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CODE",
		Short: "Get gift card details",
		Long:  "Display the balance and currency of a gift card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			card, err := client.GiftCards().ForCode(args[0]).First(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get gift card: %w", err)
			}

			if card == nil {
				return fmt.Errorf("%w: %s", alldressed.ErrGiftCardNotFound, args[0])
			}

			return giftCardRenderer.RenderOne(cmd, card)
		},
	}
}
