package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

var invoiceRenderer = &OutputRenderer[alldressed.Invoice]{
	Columns: []column[alldressed.Invoice]{
		{Header: "ID", Value: func(i *alldressed.Invoice) string { return i.ID() }},
		{Header: "Number", Value: func(i *alldressed.Invoice) string { return i.String("number") }},
		{Header: "Total", Value: func(i *alldressed.Invoice) string { return formatInt(i.Int("total")) }},
		{Header: "Currency", Value: func(i *alldressed.Invoice) string { return currencyCode(i.Currency) }},
		{Header: "Created", Value: func(i *alldressed.Invoice) string { return formatTime(i.Time("created_at")) }},
	},
	NoItemsMsg: "No invoices found.",
}

// NewInvoicesCommand creates the invoices command group
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice"},
		Short:   "Inspect invoices",
		Long:    "List the invoices of a customer, one page at a time or all at once",
	}

	cmd.AddCommand(newInvoicesListCommand())

	return cmd
}

func newInvoicesListCommand() *cobra.Command {
	var (
		customer    string
		page        int
		pageThrough bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Long:  "List the invoices of a customer. --page-through follows the next links until the last page.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			builder := client.Invoices().ForCustomer(customer)
			if page > 0 {
				builder = builder.Page(page)
			}

			current, err := builder.Get(ctx)
			if err != nil {
				return fmt.Errorf("failed to list invoices: %w", err)
			}

			invoices, err := collectInvoices(ctx, current, pageThrough)
			if err != nil {
				return err
			}

			if err := invoiceRenderer.Render(cmd, invoices); err != nil {
				return err
			}

			format, _ := outputFormat(cmd.OutOrStdout())
			if format == OutputFormatTable && !pageThrough && current.TotalPages() > 1 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d, %d invoices in total\n",
					current.Meta.CurrentPage, current.TotalPages(), current.Total())
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "customer id")
	cmd.Flags().IntVar(&page, "page", 0, "page to fetch")
	cmd.Flags().BoolVar(&pageThrough, "page-through", false, "fetch every following page")
	_ = cmd.MarkFlagRequired("customer")

	return cmd
}

// collectInvoices returns the invoices of page, and of the pages after it
// when all is set.
func collectInvoices(ctx context.Context, page *alldressed.Paginated[alldressed.Invoice], all bool) ([]*alldressed.Invoice, error) {
	invoices := append([]*alldressed.Invoice(nil), page.Items...)

	for all && page.HasNext() {
		next, err := page.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch next page: %w", err)
		}

		invoices = append(invoices, next.Items...)
		page = next
	}

	return invoices, nil
}
