package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// ChoiceBuilder implements alldressed.ChoiceBuilder.
type ChoiceBuilder struct {
	builder[alldressed.Choice]
}

// NewChoiceBuilder creates a new choice builder.
func NewChoiceBuilder(httpClient *internalhttp.Client) *ChoiceBuilder {
	b := &ChoiceBuilder{}
	b.builder = newBuilder(httpClient, b.Get)

	return b
}

// WithOption sets an option at a dotted key.
func (b *ChoiceBuilder) WithOption(key string, value any) alldressed.ChoiceBuilder {
	b.set(key, value)

	return b
}

// ForMenu sets the menu, by UUID or date. An invalid identifier is reported
// by the next terminal call unless a later ForMenu replaces it.
func (b *ChoiceBuilder) ForMenu(menu string) alldressed.ChoiceBuilder {
	menu, err := menuIdentifier(menu)
	b.err = err

	if err != nil {
		return b
	}

	return b.WithOption("menu", menu)
}

func (b *ChoiceBuilder) OfSubscription(subscription string) alldressed.ChoiceBuilder {
	return b.WithOption("subscription", subscription)
}

func (b *ChoiceBuilder) endpoint() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	menu := b.option("menu")
	if menu == "" {
		return "", alldressed.ErrMissingMenu
	}

	subscription := b.option("subscription")
	if subscription == "" {
		return "", alldressed.ErrMissingSubscription
	}

	return fmt.Sprintf("subscriptions/%s/%s/choices", esc(subscription), esc(menu)), nil
}

// Get lists the choices of the subscription for the menu.
func (b *ChoiceBuilder) Get(ctx context.Context) ([]*alldressed.Choice, error) {
	endpoint, err := b.endpoint()
	if err != nil {
		return nil, err
	}

	choices, err := b.list(ctx, "getting choices", endpoint, nil)
	if err != nil {
		return nil, b.fail("getting choices", endpoint, err)
	}

	return choices, nil
}

// Update replaces the choices of the subscription for the menu.
func (b *ChoiceBuilder) Update(ctx context.Context, choices []*alldressed.Choice) error {
	endpoint, err := b.endpoint()
	if err != nil {
		return err
	}

	payload := make([]alldressed.Attributes, 0, len(choices))
	for _, choice := range choices {
		payload = append(payload, choice.ToPayload())
	}

	return b.exec(ctx, "updating choices", http.MethodPut, endpoint, map[string]any{
		"choices": payload,
	})
}

var _ alldressed.ChoiceBuilder = (*ChoiceBuilder)(nil)
