package client

import (
	"context"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// ZoneBuilder implements alldressed.ZoneBuilder.
type ZoneBuilder struct {
	builder[alldressed.Zone]
}

// NewZoneBuilder creates a new zone builder.
func NewZoneBuilder(httpClient *internalhttp.Client) *ZoneBuilder {
	b := &ZoneBuilder{}
	b.builder = newBuilder(httpClient, b.Get)

	return b
}

// WithOption sets an option at a dotted key.
func (b *ZoneBuilder) WithOption(key string, value any) alldressed.ZoneBuilder {
	b.set(key, value)

	return b
}

// ForPostcode looks up the zone serving postcode.
func (b *ZoneBuilder) ForPostcode(postcode string) alldressed.ZoneBuilder {
	return b.WithOption("postcode", postcode)
}

// Get lists the zones, or the zone of the postcode. A postcode outside every
// zone fails with a not found error wrapping alldressed.ErrZoneNotFound.
func (b *ZoneBuilder) Get(ctx context.Context) ([]*alldressed.Zone, error) {
	endpoint := "zones"

	postcode := firstOf(b.option("postcode"), b.option("id"))
	if postcode != "" {
		endpoint += "/" + esc(postcode)
	}

	zones, err := b.list(ctx, "getting zones", endpoint, nil)
	if err != nil {
		return nil, b.fail("getting zones", endpoint, notFound(err, alldressed.ResourceZone, postcode))
	}

	return zones, nil
}

var _ alldressed.ZoneBuilder = (*ZoneBuilder)(nil)
