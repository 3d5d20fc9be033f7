package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"time"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/internal/options"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// builder holds what every resource builder shares: the transport, the option
// store and the Get of the embedding builder, on which All, First and Find
// are built.
type builder[T any] struct {
	httpClient *internalhttp.Client
	options    *options.Store
	get        func(ctx context.Context) ([]*T, error)
	// err is reported by the next terminal call, for setters that validate.
	err error
}

func newBuilder[T any](httpClient *internalhttp.Client, get func(ctx context.Context) ([]*T, error)) builder[T] {
	return builder[T]{
		httpClient: httpClient,
		options:    options.New(),
		get:        get,
	}
}

// GetOption returns the option stored at a dotted key.
func (b *builder[T]) GetOption(key string) any {
	return b.options.Get(key)
}

// All is Get.
func (b *builder[T]) All(ctx context.Context) ([]*T, error) {
	return b.get(ctx)
}

// First returns the first result of Get, or nil.
func (b *builder[T]) First(ctx context.Context) (*T, error) {
	items, err := b.get(ctx)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, nil
	}

	return items[0], nil
}

// Find looks up a single resource by id.
func (b *builder[T]) Find(ctx context.Context, id string) (*T, error) {
	b.options.Set("id", id)

	return b.First(ctx)
}

func (b *builder[T]) set(key string, value any) {
	b.options.Set(key, value)
}

func (b *builder[T]) option(key string) string {
	return b.options.String(key)
}

func (b *builder[T]) logger() alldressed.Logger {
	return b.httpClient.Logger()
}

func (b *builder[T]) debug(msg, endpoint string) {
	b.logger().Debug(msg, map[string]interface{}{
		"account":  b.httpClient.AccountID(),
		"endpoint": endpoint,
	})
}

// fail logs err and wraps it with the operation that failed.
func (b *builder[T]) fail(operation, endpoint string, err error) error {
	b.logger().Error(operation+" failed", map[string]interface{}{
		"account":  b.httpClient.AccountID(),
		"endpoint": endpoint,
		"error":    err.Error(),
	})

	return fmt.Errorf("%s: %w", operation, err)
}

// list sends a GET and decodes the data of the envelope into T.
func (b *builder[T]) list(ctx context.Context, operation, endpoint string, query url.Values) ([]*T, error) {
	b.debug(operation, endpoint)

	resp, err := b.httpClient.Get(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}

	items, err := decodeList[T](resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return items, nil
}

// exec sends a write whose response body is not needed.
func (b *builder[T]) exec(ctx context.Context, operation, method, endpoint string, body any) error {
	b.debug(operation, endpoint)

	if _, err := b.httpClient.Do(ctx, &internalhttp.Request{
		Method: method,
		Path:   endpoint,
		Body:   body,
	}); err != nil {
		return b.fail(operation, endpoint, err)
	}

	return nil
}

// send dispatches a write and decodes the data of the envelope into R.
func send[R any](ctx context.Context, httpClient *internalhttp.Client, method, endpoint string, body any) (*R, error) {
	resp, err := httpClient.Do(ctx, &internalhttp.Request{
		Method: method,
		Path:   endpoint,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}

	return decodeOne[R](resp)
}

// decodeList decodes the data of the envelope. A single object, as returned
// for a lookup by id, becomes a one element slice.
func decodeList[T any](resp *internalhttp.Response) ([]*T, error) {
	envelope, err := resp.Envelope()
	if err != nil {
		return nil, err
	}

	return decodeData[T](envelope.Data)
}

func decodeData[T any](data json.RawMessage) ([]*T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []*T{}, nil
	}

	if data[0] == '{' {
		item, err := alldressed.Decode[T](data)
		if err != nil {
			return nil, fmt.Errorf("parsing response: %w", err)
		}

		return []*T{item}, nil
	}

	var items []*T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return items, nil
}

// decodeOne decodes the data of the envelope as a single T. An empty body
// yields nil.
func decodeOne[T any](resp *internalhttp.Response) (*T, error) {
	envelope, err := resp.Envelope()
	if err != nil {
		return nil, err
	}

	data := bytes.TrimSpace(envelope.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	item, err := alldressed.Decode[T](data)
	if err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return item, nil
}

// notFound turns a 404 on a lookup by key into a *alldressed.NotFoundError.
// Other errors, and lookups without a key, are returned unchanged.
func notFound(err error, resource alldressed.Resource, key string) error {
	if key == "" || alldressed.StatusCode(err) != http.StatusNotFound {
		return err
	}

	return &alldressed.NotFoundError{
		Resource: resource,
		Key:      key,
		Err:      err,
	}
}

type payload map[string]any

// compact drops nil values, keeping false and zero.
func compact(p payload) payload {
	out := make(payload, len(p))

	for key, value := range p {
		if !isNil(value) {
			out[key] = value
		}
	}

	return out
}

// filled drops nil, zero and empty values.
func filled(p payload) payload {
	out := make(payload, len(p))

	for key, value := range p {
		if !isEmpty(value) {
			out[key] = value
		}
	}

	return out
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func isEmpty(value any) bool {
	if isNil(value) {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	default:
		return rv.IsZero()
	}
}

// optional returns nil for the zero value so that compact drops it.
func optional[V comparable](value V) any {
	var zero V
	if value == zero {
		return nil
	}

	return value
}

// utc returns t in UTC, or nil when zero.
func utc(t time.Time) any {
	if t.IsZero() {
		return nil
	}

	return t.UTC()
}

// esc escapes a path segment.
func esc(segment string) string {
	return url.PathEscape(segment)
}

// firstOf returns the first non-empty value.
func firstOf(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}

// params builds a query from key/value pairs, skipping empty values.
func params(pairs ...string) url.Values {
	values := url.Values{}

	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			values.Set(pairs[i], pairs[i+1])
		}
	}

	return values
}
