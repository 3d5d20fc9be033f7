package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

var customerRenderer = &OutputRenderer[alldressed.Customer]{
	Columns: []column[alldressed.Customer]{
		{Header: "ID", Value: func(c *alldressed.Customer) string { return c.ID() }},
		{Header: "Email", Value: func(c *alldressed.Customer) string { return c.Email() }},
		{Header: "First Name", Value: func(c *alldressed.Customer) string { return c.String("first_name") }},
		{Header: "Last Name", Value: func(c *alldressed.Customer) string { return c.String("last_name") }},
		{Header: "Currency", Value: func(c *alldressed.Customer) string { return currencyCode(c.Currency) }},
	},
	NoItemsMsg: "No customers found.",
}

var subscriptionRenderer = &OutputRenderer[alldressed.Subscription]{
	Columns: []column[alldressed.Subscription]{
		{Header: "ID", Value: func(s *alldressed.Subscription) string { return s.ID() }},
		{Header: "Status", Value: func(s *alldressed.Subscription) string { return s.Status() }},
		{Header: "Frequency", Value: func(s *alldressed.Subscription) string { return formatInt(int(s.Frequency())) }},
		{Header: "Customer", Value: func(s *alldressed.Subscription) string {
			if s.Customer == nil {
				return ""
			}

			return s.Customer.ID()
		}},
		{Header: "Currency", Value: func(s *alldressed.Subscription) string { return currencyCode(s.Currency) }},
	},
	NoItemsMsg: "No subscriptions found.",
}

var menuRenderer = &OutputRenderer[alldressed.Menu]{
	Columns: []column[alldressed.Menu]{
		{Header: "ID", Value: func(m *alldressed.Menu) string { return m.ID() }},
		{Header: "Date", Value: func(m *alldressed.Menu) string { return formatDate(m.Date) }},
		{Header: "Cut Off", Value: func(m *alldressed.Menu) string { return formatTime(m.CutOff) }},
		{Header: "Delivery", Value: func(m *alldressed.Menu) string { return formatDate(m.DeliveryDate) }},
		{Header: "Skipped", Value: func(m *alldressed.Menu) string { return formatBool(m.IsSkipped()) }},
	},
	NoItemsMsg: "No menus found.",
}

func currencyCode(currency *alldressed.Currency) string {
	if currency == nil {
		return ""
	}

	return currency.Code()
}

// NewCustomersCommand creates the customers command group
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Inspect customers",
		Long:    "List the customers of the account and display a single customer",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List the customers of the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			customers, err := client.Customers().Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			return customerRenderer.Render(cmd, customers)
		},
	}
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get customer details",
		Long:  "Display detailed information about a specific customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Find(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			if customer == nil {
				return fmt.Errorf("customer %s: %w", args[0], alldressed.ErrMissingCustomer)
			}

			return customerRenderer.RenderOne(cmd, customer)
		},
	}
}

// NewSubscriptionsCommand creates the subscriptions command group
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "subs"},
		Short:   "Inspect subscriptions",
		Long:    "List subscriptions, optionally of a single customer, and display a single subscription",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsGetCommand())

	return cmd
}

func newSubscriptionsListCommand() *cobra.Command {
	var customer string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		Long:  "List the subscriptions of the account or of a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			builder := client.Subscriptions()
			if customer != "" {
				builder = builder.ForCustomer(customer)
			}

			subscriptions, err := builder.Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list subscriptions: %w", err)
			}

			return subscriptionRenderer.Render(cmd, subscriptions)
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "only subscriptions of this customer")

	return cmd
}

func newSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Get subscription details",
		Long:  "Display detailed information about a specific subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Find(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get subscription: %w", err)
			}

			if subscription == nil {
				return fmt.Errorf("subscription %s: %w", args[0], alldressed.ErrMissingSubscription)
			}

			return subscriptionRenderer.RenderOne(cmd, subscription)
		},
	}
}

// NewMenusCommand creates the menus command group
func NewMenusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "menus",
		Aliases: []string{"menu"},
		Short:   "Inspect menus",
		Long:    "List the upcoming menus of a subscription",
	}

	cmd.AddCommand(newMenusListCommand())

	return cmd
}

func newMenusListCommand() *cobra.Command {
	var subscription string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List menus",
		Long:  "List the menus of a subscription along with their cut off and skip state",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			menus, err := client.Menus().ForSubscription(subscription).Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list menus: %w", err)
			}

			return menuRenderer.Render(cmd, menus)
		},
	}

	cmd.Flags().StringVar(&subscription, "subscription", "", "subscription id")
	_ = cmd.MarkFlagRequired("subscription")

	return cmd
}
