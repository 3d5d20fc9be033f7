package client

import (
	"context"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// TaxBuilder implements alldressed.TaxBuilder.
type TaxBuilder struct {
	builder[alldressed.Tax]
}

// NewTaxBuilder creates a new tax builder.
func NewTaxBuilder(httpClient *internalhttp.Client) *TaxBuilder {
	b := &TaxBuilder{}
	b.builder = newBuilder(httpClient, b.Get)

	return b
}

// WithOption sets an option at a dotted key.
func (b *TaxBuilder) WithOption(key string, value any) alldressed.TaxBuilder {
	b.set(key, value)

	return b
}

func (b *TaxBuilder) ForCountry(country string) alldressed.TaxBuilder {
	return b.WithOption("country", country)
}

func (b *TaxBuilder) ForState(state string) alldressed.TaxBuilder {
	return b.WithOption("state", state)
}

func (b *TaxBuilder) ForCity(city string) alldressed.TaxBuilder {
	return b.WithOption("city", city)
}

func (b *TaxBuilder) ForPostcode(postcode string) alldressed.TaxBuilder {
	return b.WithOption("postcode", postcode)
}

// Get computes the taxes applied to a delivery at the location.
func (b *TaxBuilder) Get(ctx context.Context) ([]*alldressed.Tax, error) {
	endpoint := "shipping/taxes"
	b.debug("getting taxes", endpoint)

	resp, err := b.httpClient.Post(ctx, endpoint, payload{
		"country":  optional(b.option("country")),
		"state":    optional(b.option("state")),
		"city":     optional(b.option("city")),
		"postcode": optional(b.option("postcode")),
	})
	if err != nil {
		return nil, b.fail("getting taxes", endpoint, err)
	}

	return decodeList[alldressed.Tax](resp)
}

var _ alldressed.TaxBuilder = (*TaxBuilder)(nil)
