package client

import (
	"context"
	"fmt"
	"strings"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// ItemBuilder implements alldressed.ItemBuilder.
type ItemBuilder struct {
	builder[alldressed.Item]
}

// NewItemBuilder creates a new item builder.
func NewItemBuilder(httpClient *internalhttp.Client) *ItemBuilder {
	b := &ItemBuilder{}
	b.builder = newBuilder(httpClient, b.Get)

	return b
}

// WithOption sets an option at a dotted key.
func (b *ItemBuilder) WithOption(key string, value any) alldressed.ItemBuilder {
	b.set(key, value)

	return b
}

// ForMenu sets the menu, by UUID or date. An invalid identifier is reported
// by the next terminal call unless a later ForMenu replaces it.
func (b *ItemBuilder) ForMenu(menu string) alldressed.ItemBuilder {
	menu, err := menuIdentifier(menu)
	b.err = err

	if err != nil {
		return b
	}

	return b.WithOption("menu", menu)
}

// Packages includes packages in the listing.
func (b *ItemBuilder) Packages() alldressed.ItemBuilder {
	return b.WithOption("types."+string(alldressed.ItemTypePackage), true)
}

// Products includes products in the listing.
func (b *ItemBuilder) Products() alldressed.ItemBuilder {
	return b.WithOption("types."+string(alldressed.ItemTypeProduct), true)
}

// Get lists the items of the menu. Without a type selected, every type is
// returned.
func (b *ItemBuilder) Get(ctx context.Context) ([]*alldressed.Item, error) {
	if b.err != nil {
		return nil, b.err
	}

	menu := b.option("menu")
	if menu == "" {
		return nil, alldressed.ErrMissingMenu
	}

	var types []string

	for _, itemType := range []alldressed.ItemType{alldressed.ItemTypePackage, alldressed.ItemTypeProduct} {
		if b.options.Bool("types." + string(itemType)) {
			types = append(types, string(itemType))
		}
	}

	endpoint := fmt.Sprintf("menus/%s/items", esc(menu))

	items, err := b.list(ctx, "getting items", endpoint, params("types", strings.Join(types, ",")))
	if err != nil {
		return nil, b.fail("getting items", endpoint, err)
	}

	return items, nil
}

var _ alldressed.ItemBuilder = (*ItemBuilder)(nil)
