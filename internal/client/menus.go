package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// MenuBuilder implements alldressed.MenuBuilder.
type MenuBuilder struct {
	builder[alldressed.Menu]
}

// NewMenuBuilder creates a new menu builder.
func NewMenuBuilder(httpClient *internalhttp.Client) *MenuBuilder {
	b := &MenuBuilder{}
	b.builder = newBuilder(httpClient, b.Get)

	return b
}

// WithOption sets an option at a dotted key.
func (b *MenuBuilder) WithOption(key string, value any) alldressed.MenuBuilder {
	b.set(key, value)

	return b
}

// For targets Skip, Unskip and Copy at a menu.
func (b *MenuBuilder) For(menu string) alldressed.MenuBuilder {
	return b.WithOption("menu", menu)
}

func (b *MenuBuilder) ForSubscription(subscription string) alldressed.MenuBuilder {
	return b.WithOption("subscription", subscription)
}

// Get lists the menus of the subscription.
func (b *MenuBuilder) Get(ctx context.Context) ([]*alldressed.Menu, error) {
	subscription := b.option("subscription")
	if subscription == "" {
		return nil, alldressed.ErrMissingSubscription
	}

	endpoint := fmt.Sprintf("subscriptions/%s/menus", esc(subscription))
	if id := b.option("id"); id != "" {
		endpoint += "/" + esc(id)
	}

	menus, err := b.list(ctx, "getting menus", endpoint, nil)
	if err != nil {
		return nil, b.fail("getting menus", endpoint, err)
	}

	return menus, nil
}

// Skip skips the menu for the subscription.
func (b *MenuBuilder) Skip(ctx context.Context) error {
	return b.toggle(ctx, "skip")
}

// Unskip restores a skipped menu.
func (b *MenuBuilder) Unskip(ctx context.Context) error {
	return b.toggle(ctx, "unskip")
}

func (b *MenuBuilder) toggle(ctx context.Context, action string) error {
	subscription := b.option("subscription")
	if subscription == "" {
		return alldressed.ErrMissingSubscription
	}

	menu := b.option("menu")
	if menu == "" {
		return alldressed.ErrMissingMenu
	}

	endpoint := fmt.Sprintf("subscriptions/%s/%s/%s", esc(subscription), esc(menu), action)

	return b.exec(ctx, action+" menu", http.MethodPost, endpoint, nil)
}

// Copy copies the selection of the menu set with For between two dates.
func (b *MenuBuilder) Copy(ctx context.Context, from, to time.Time) (*alldressed.Menu, error) {
	menu := b.option("menu")
	if menu == "" {
		return nil, alldressed.ErrMissingMenu
	}

	endpoint := fmt.Sprintf("menus/%s/copy", esc(menu))
	b.debug("copying menu", endpoint)

	copied, err := send[alldressed.Menu](ctx, b.httpClient, http.MethodPost, endpoint, payload{
		"from": from.UTC(),
		"to":   to.UTC(),
	})
	if err != nil {
		return nil, b.fail("copying menu", endpoint, err)
	}

	return copied, nil
}

var _ alldressed.MenuBuilder = (*MenuBuilder)(nil)
