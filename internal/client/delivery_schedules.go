package client

import (
	"context"
	"fmt"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// DeliveryScheduleBuilder implements alldressed.DeliveryScheduleBuilder.
type DeliveryScheduleBuilder struct {
	builder[alldressed.DeliverySchedule]
}

// NewDeliveryScheduleBuilder creates a new delivery schedule builder.
func NewDeliveryScheduleBuilder(httpClient *internalhttp.Client) *DeliveryScheduleBuilder {
	b := &DeliveryScheduleBuilder{}
	b.builder = newBuilder(httpClient, b.Get)

	return b
}

// WithOption sets an option at a dotted key.
func (b *DeliveryScheduleBuilder) WithOption(key string, value any) alldressed.DeliveryScheduleBuilder {
	b.set(key, value)

	return b
}

// ForPostcode scopes the schedules to the zone of postcode.
func (b *DeliveryScheduleBuilder) ForPostcode(postcode string) alldressed.DeliveryScheduleBuilder {
	return b.WithOption("postcode", postcode)
}

// Available restricts the listing to schedules open for new deliveries.
func (b *DeliveryScheduleBuilder) Available() alldressed.DeliveryScheduleBuilder {
	return b.WithOption("available", true)
}

// Get lists the schedules of the zone. A 404 is reported against the schedule
// when one was looked up and against the zone otherwise.
func (b *DeliveryScheduleBuilder) Get(ctx context.Context) ([]*alldressed.DeliverySchedule, error) {
	postcode := b.option("postcode")
	if postcode == "" {
		return nil, alldressed.ErrMissingPostalCode
	}

	endpoint := fmt.Sprintf("zones/%s/schedules", esc(postcode))

	id := b.option("id")

	switch {
	case id != "":
		endpoint += "/" + esc(id)
	case b.options.Bool("available"):
		endpoint += "/available"
	}

	schedules, err := b.list(ctx, "getting delivery schedules", endpoint, nil)
	if err != nil {
		if id != "" {
			err = notFound(err, alldressed.ResourceDeliverySchedule, id)
		} else {
			err = notFound(err, alldressed.ResourceZone, postcode)
		}

		return nil, b.fail("getting delivery schedules", endpoint, err)
	}

	return schedules, nil
}

var _ alldressed.DeliveryScheduleBuilder = (*DeliveryScheduleBuilder)(nil)
