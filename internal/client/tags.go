package client

import (
	"context"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// TagBuilder implements alldressed.TagBuilder.
type TagBuilder struct {
	builder[alldressed.Tag]
}

// NewTagBuilder creates a new tag builder.
func NewTagBuilder(httpClient *internalhttp.Client) *TagBuilder {
	b := &TagBuilder{}
	b.builder = newBuilder(httpClient, b.Get)

	return b
}

// WithOption sets an option at a dotted key.
func (b *TagBuilder) WithOption(key string, value any) alldressed.TagBuilder {
	b.set(key, value)

	return b
}

func (b *TagBuilder) Get(ctx context.Context) ([]*alldressed.Tag, error) {
	endpoint := "tags"
	if id := b.option("id"); id != "" {
		endpoint += "/" + esc(id)
	}

	tags, err := b.list(ctx, "getting tags", endpoint, nil)
	if err != nil {
		return nil, b.fail("getting tags", endpoint, err)
	}

	return tags, nil
}

var _ alldressed.TagBuilder = (*TagBuilder)(nil)
