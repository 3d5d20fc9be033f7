package client

import (
	"context"
	"encoding/json"
	"fmt"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// DeliveryFrequencyBuilder implements alldressed.DeliveryFrequencyBuilder.
type DeliveryFrequencyBuilder struct {
	builder[alldressed.DeliveryFrequency]
}

// NewDeliveryFrequencyBuilder creates a new delivery frequency builder.
func NewDeliveryFrequencyBuilder(httpClient *internalhttp.Client) *DeliveryFrequencyBuilder {
	b := &DeliveryFrequencyBuilder{}
	b.builder = newBuilder(httpClient, b.Get)

	return b
}

// WithOption sets an option at a dotted key.
func (b *DeliveryFrequencyBuilder) WithOption(key string, value any) alldressed.DeliveryFrequencyBuilder {
	b.set(key, value)

	return b
}

// ForSchedule scopes the frequencies to a delivery schedule.
func (b *DeliveryFrequencyBuilder) ForSchedule(schedule string) alldressed.DeliveryFrequencyBuilder {
	return b.WithOption("schedule", schedule)
}

// Get lists the frequencies offered by the schedule. The API answers with
// day counts, each one becoming a DeliveryFrequency.
func (b *DeliveryFrequencyBuilder) Get(ctx context.Context) ([]*alldressed.DeliveryFrequency, error) {
	schedule := b.option("schedule")
	if schedule == "" {
		return nil, alldressed.ErrMissingDeliverySchedule
	}

	endpoint := fmt.Sprintf("schedules/%s/frequencies", esc(schedule))
	b.debug("getting delivery frequencies", endpoint)

	resp, err := b.httpClient.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, b.fail("getting delivery frequencies", endpoint,
			notFound(err, alldressed.ResourceDeliverySchedule, schedule))
	}

	envelope, err := resp.Envelope()
	if err != nil {
		return nil, fmt.Errorf("parsing delivery frequencies response: %w", err)
	}

	var days []int
	if err := json.Unmarshal(envelope.Data, &days); err != nil {
		return nil, fmt.Errorf("parsing delivery frequencies response: %w", err)
	}

	frequencies := make([]*alldressed.DeliveryFrequency, 0, len(days))
	for _, count := range days {
		frequencies = append(frequencies, alldressed.NewDeliveryFrequency(count))
	}

	return frequencies, nil
}

var _ alldressed.DeliveryFrequencyBuilder = (*DeliveryFrequencyBuilder)(nil)
