package client

import (
	"context"
	"fmt"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// PackageBuilder implements alldressed.PackageBuilder.
type PackageBuilder struct {
	builder[alldressed.Package]
}

// NewPackageBuilder creates a new package builder.
func NewPackageBuilder(httpClient *internalhttp.Client) *PackageBuilder {
	b := &PackageBuilder{}
	b.builder = newBuilder(httpClient, b.Get)

	return b
}

// WithOption sets an option at a dotted key.
func (b *PackageBuilder) WithOption(key string, value any) alldressed.PackageBuilder {
	b.set(key, value)

	return b
}

func (b *PackageBuilder) ForMenu(menu string) alldressed.PackageBuilder {
	return b.WithOption("menu", menu)
}

// Root restricts the listing to packages without a parent.
func (b *PackageBuilder) Root() alldressed.PackageBuilder {
	return b.WithOption("root", true)
}

// Get lists the packages. A lookup by id goes to packages/{id} even when a
// menu is set, and a 404 on it wraps alldressed.ErrPackageNotFound.
func (b *PackageBuilder) Get(ctx context.Context) ([]*alldressed.Package, error) {
	id := b.option("id")

	var endpoint string

	switch menu := b.option("menu"); {
	case id != "":
		endpoint = "packages/" + esc(id)
	case menu != "":
		endpoint = fmt.Sprintf("menus/%s/packages", esc(menu))
	default:
		endpoint = "packages"
	}

	query := params()
	if b.options.Bool("root") {
		query.Set("root", "1")
	}

	packages, err := b.list(ctx, "getting packages", endpoint, query)
	if err != nil {
		return nil, b.fail("getting packages", endpoint, notFound(err, alldressed.ResourcePackage, id))
	}

	return packages, nil
}

var _ alldressed.PackageBuilder = (*PackageBuilder)(nil)
