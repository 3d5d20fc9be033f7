package client

import (
	"context"
	"net/http"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// CustomerBuilder implements alldressed.CustomerBuilder.
type CustomerBuilder struct {
	builder[alldressed.Customer]
}

// NewCustomerBuilder creates a new customer builder.
func NewCustomerBuilder(httpClient *internalhttp.Client) *CustomerBuilder {
	b := &CustomerBuilder{}
	b.builder = newBuilder(httpClient, b.Get)

	return b
}

// WithOption sets an option at a dotted key.
func (b *CustomerBuilder) WithOption(key string, value any) alldressed.CustomerBuilder {
	b.set(key, value)

	return b
}

// Get lists the customers, or the one set with Find.
func (b *CustomerBuilder) Get(ctx context.Context) ([]*alldressed.Customer, error) {
	endpoint := "customers"
	if id := b.option("id"); id != "" {
		endpoint += "/" + esc(id)
	}

	customers, err := b.list(ctx, "getting customers", endpoint, nil)
	if err != nil {
		return nil, b.fail("getting customers", endpoint, err)
	}

	return customers, nil
}

// Create creates a customer from attributes.
func (b *CustomerBuilder) Create(ctx context.Context, attributes alldressed.Attributes) (*alldressed.Customer, error) {
	endpoint := "customers"
	b.debug("creating customer", endpoint)

	customer, err := send[alldressed.Customer](ctx, b.httpClient, http.MethodPost, endpoint, attributes)
	if err != nil {
		return nil, b.fail("creating customer", endpoint, err)
	}

	return customer, nil
}

// Update replaces the attributes of customer id.
func (b *CustomerBuilder) Update(ctx context.Context, id string, attributes alldressed.Attributes) (*alldressed.Customer, error) {
	if id == "" {
		return nil, alldressed.ErrMissingCustomer
	}

	endpoint := "customers/" + esc(id)
	b.debug("updating customer", endpoint)

	customer, err := send[alldressed.Customer](ctx, b.httpClient, http.MethodPut, endpoint, attributes)
	if err != nil {
		return nil, b.fail("updating customer", endpoint, err)
	}

	return customer, nil
}

var _ alldressed.CustomerBuilder = (*CustomerBuilder)(nil)
