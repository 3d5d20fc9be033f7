package client

import (
	"context"
	"fmt"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// ProductBuilder implements alldressed.ProductBuilder.
type ProductBuilder struct {
	builder[alldressed.Product]
}

// NewProductBuilder creates a new product builder.
func NewProductBuilder(httpClient *internalhttp.Client) *ProductBuilder {
	b := &ProductBuilder{}
	b.builder = newBuilder(httpClient, b.Get)

	return b
}

// WithOption sets an option at a dotted key.
func (b *ProductBuilder) WithOption(key string, value any) alldressed.ProductBuilder {
	b.set(key, value)

	return b
}

func (b *ProductBuilder) ForMenu(menu string) alldressed.ProductBuilder {
	return b.WithOption("menu", menu)
}

func (b *ProductBuilder) ForPackage(pkg string) alldressed.ProductBuilder {
	return b.WithOption("package", pkg)
}

// Get lists the products, narrowed to the menu and package when set. A 404
// on a lookup by id wraps alldressed.ErrProductNotFound.
func (b *ProductBuilder) Get(ctx context.Context) ([]*alldressed.Product, error) {
	endpoint := "products"

	if pkg := b.option("package"); pkg != "" {
		endpoint = fmt.Sprintf("packages/%s/%s", esc(pkg), endpoint)
	}

	if menu := b.option("menu"); menu != "" {
		endpoint = fmt.Sprintf("menus/%s/%s", esc(menu), endpoint)
	}

	id := b.option("id")
	if id != "" {
		endpoint += "/" + esc(id)
	}

	products, err := b.list(ctx, "getting products", endpoint, nil)
	if err != nil {
		return nil, b.fail("getting products", endpoint, notFound(err, alldressed.ResourceProduct, id))
	}

	return products, nil
}

var _ alldressed.ProductBuilder = (*ProductBuilder)(nil)
