package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/internal/options"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// InvoiceBuilder implements alldressed.InvoiceBuilder.
type InvoiceBuilder struct {
	httpClient *internalhttp.Client
	options    *options.Store
}

// NewInvoiceBuilder creates a new invoice builder.
func NewInvoiceBuilder(httpClient *internalhttp.Client) *InvoiceBuilder {
	return &InvoiceBuilder{
		httpClient: httpClient,
		options:    options.New(),
	}
}

// WithOption sets an option at a dotted key.
func (b *InvoiceBuilder) WithOption(key string, value any) alldressed.InvoiceBuilder {
	b.options.Set(key, value)

	return b
}

// GetOption returns the option stored at a dotted key.
func (b *InvoiceBuilder) GetOption(key string) any {
	return b.options.Get(key)
}

func (b *InvoiceBuilder) ForCustomer(customer string) alldressed.InvoiceBuilder {
	return b.WithOption("customer", customer)
}

// Page starts the listing at page, counted from 1.
func (b *InvoiceBuilder) Page(page int) alldressed.InvoiceBuilder {
	return b.WithOption("page", page)
}

// Get returns the first page of invoices of the customer, or the one set
// with Page.
func (b *InvoiceBuilder) Get(ctx context.Context) (*alldressed.Paginated[alldressed.Invoice], error) {
	customer := b.options.String("customer")
	if customer == "" {
		return nil, alldressed.ErrMissingCustomer
	}

	query := url.Values{}
	if page, ok := b.options.Get("page").(int); ok && page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	endpoint := fmt.Sprintf("customers/%s/invoices", esc(customer))

	page, err := invoicePager{httpClient: b.httpClient}.Page(ctx, endpoint, query)
	if err != nil {
		b.httpClient.Logger().Error("getting invoices failed", map[string]interface{}{
			"account":  b.httpClient.AccountID(),
			"endpoint": endpoint,
			"error":    err.Error(),
		})

		return nil, err
	}

	return page, nil
}

// All is Get.
func (b *InvoiceBuilder) All(ctx context.Context) (*alldressed.Paginated[alldressed.Invoice], error) {
	return b.Get(ctx)
}

// First returns the first invoice of the page, or nil.
func (b *InvoiceBuilder) First(ctx context.Context) (*alldressed.Invoice, error) {
	page, err := b.Get(ctx)
	if err != nil {
		return nil, err
	}

	if page.Len() == 0 {
		return nil, nil
	}

	return page.Items[0], nil
}

// invoicePager fetches the pages of an invoice listing, including the ones
// linked from a page.
type invoicePager struct {
	httpClient *internalhttp.Client
}

// Page implements alldressed.Pager.
func (p invoicePager) Page(ctx context.Context, path string, query url.Values) (*alldressed.Paginated[alldressed.Invoice], error) {
	page, err := fetchPage[alldressed.Invoice](ctx, p.httpClient, p, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting invoices: %w", err)
	}

	return page, nil
}

// fetchPage sends a GET and decodes a paginated envelope.
func fetchPage[T any](ctx context.Context, httpClient *internalhttp.Client, pager alldressed.Pager[T], path string, query url.Values) (*alldressed.Paginated[T], error) {
	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	envelope, err := resp.Envelope()
	if err != nil {
		return nil, err
	}

	items, err := decodeData[T](envelope.Data)
	if err != nil {
		return nil, err
	}

	return alldressed.NewPaginated(items, envelope.Links, envelope.Meta, pager), nil
}

var _ alldressed.InvoiceBuilder = (*InvoiceBuilder)(nil)
