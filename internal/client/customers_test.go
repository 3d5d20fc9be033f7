package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

func TestCustomerBuilder_Find(t *testing.T) {
	t.Parallel()

	RunGetTests(t, []TestGetOperation[alldressed.Customer]{
		{
			Name:         "existing customer",
			ID:           "c1",
			ExpectedPath: "customers/c1",
			Response: map[string]any{"data": map[string]any{
				"id":       "c1",
				"email":    "jane@example.com",
				"currency": map[string]any{"id": "cad", "code": "CAD"},
			}},
		},
		{
			Name:         "unknown customer",
			ID:           "nope",
			ExpectedPath: "customers/nope",
			StatusCode:   http.StatusNotFound,
			Response:     notFoundBody,
			WantErr:      alldressed.ErrRequestFailed,
		},
	}, func(c *Client) func(context.Context, string) (*alldressed.Customer, error) {
		return c.Customers().Find
	})
}

func TestCustomerBuilder_Hydrates(t *testing.T) {
	t.Parallel()

	fake := internalhttp.NewFakeTransport().FakeJSON("customers/c1", map[string]any{"data": map[string]any{
		"id":              "c1",
		"currency":        map[string]any{"id": "cad", "code": "CAD"},
		"shipping":        map[string]any{"line_1": "1 Main St", "city": "Montreal"},
		"payment_methods": []any{map[string]any{"id": "pm1", "primary": true}},
	}})

	customer, err := NewTestClient(t, fake).Customers().Find(context.Background(), "c1")
	require.NoError(t, err)

	require.NotNil(t, customer.Currency)
	assert.Equal(t, "CAD", customer.Currency.Code())
	require.NotNil(t, customer.Shipping)
	assert.Equal(t, "Montreal", customer.Shipping.City)
	require.Len(t, customer.PaymentMethods, 1)
	assert.True(t, customer.PaymentMethods[0].IsPrimary())
}

func TestCustomerBuilder_Writes(t *testing.T) {
	t.Parallel()

	client := NewTestServer(t, func(r chi.Router) {
		r.Post("/customers", func(writer http.ResponseWriter, request *http.Request) {
			body := readJSON(t, request)
			assert.Equal(t, "jane@example.com", body["email"])

			writeJSON(t, writer, http.StatusCreated, map[string]any{"data": map[string]any{"id": "c1", "email": body["email"]}})
		})
		r.Put("/customers/{id}", func(writer http.ResponseWriter, request *http.Request) {
			body := readJSON(t, request)
			assert.Equal(t, "c1", chi.URLParam(request, "id"))

			writeJSON(t, writer, http.StatusOK, map[string]any{"data": map[string]any{"id": "c1", "email": body["email"]}})
		})
	})

	created, err := client.Customers().Create(context.Background(), alldressed.Attributes{"email": "jane@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "c1", created.ID())

	updated, err := client.Customers().Update(context.Background(), "c1", alldressed.Attributes{"email": "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email())

	_, err = client.Customers().Update(context.Background(), "", nil)
	require.ErrorIs(t, err, alldressed.ErrMissingCustomer)
}

func TestCustomer_Save(t *testing.T) {
	t.Parallel()

	fake := internalhttp.NewFakeTransport().
		FakeJSON("POST customers", map[string]any{"data": map[string]any{"id": "c1", "email": "jane@example.com"}}).
		FakeJSON("PUT customers/c1", map[string]any{"data": map[string]any{"id": "c1", "email": "jane@example.com"}})
	client := NewTestClient(t, fake)

	saved, err := alldressed.NewCustomer(alldressed.Attributes{"email": "jane@example.com"}).Save(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, "c1", saved.ID())

	_, err = saved.Save(context.Background(), client)
	require.NoError(t, err)

	requests := fake.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, http.MethodPut, requests[1].Method)
	assert.Equal(t, "customers/c1", requests[1].Path)
}
