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

func TestOrderBuilder_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		build        func(alldressed.OrderBuilder) alldressed.OrderBuilder
		expectedPath string
		wantErr      error
	}{
		{
			name:         "orders of a subscription",
			build:        func(b alldressed.OrderBuilder) alldressed.OrderBuilder { return b.ForSubscription("s1") },
			expectedPath: "subscriptions/s1/orders",
		},
		{
			name: "transactional orders",
			build: func(b alldressed.OrderBuilder) alldressed.OrderBuilder {
				return b.ForCustomer("c1").Transactional()
			},
			expectedPath: "customers/c1/orders",
		},
		{
			name: "pending order",
			build: func(b alldressed.OrderBuilder) alldressed.OrderBuilder {
				return b.ForCustomer("c1").Pending().WithOption("id", "o1")
			},
			expectedPath: "customers/c1/orders/o1/pending",
		},
		{
			name:    "without subscription",
			build:   func(b alldressed.OrderBuilder) alldressed.OrderBuilder { return b },
			wantErr: alldressed.ErrMissingSubscription,
		},
		{
			name:    "transactional without customer",
			build:   func(b alldressed.OrderBuilder) alldressed.OrderBuilder { return b.Transactional() },
			wantErr: alldressed.ErrMissingCustomer,
		},
		{
			name: "pending without order",
			build: func(b alldressed.OrderBuilder) alldressed.OrderBuilder {
				return b.ForCustomer("c1").Pending()
			},
			wantErr: alldressed.ErrMissingID,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			fake := internalhttp.NewFakeTransport().FakeJSON("*orders*", map[string]any{
				"data": []any{map[string]any{
					"id":       "o1",
					"shipping": map[string]any{"city": "Montreal"},
					"currency": map[string]any{"code": "cad"},
					"invoices": []any{map[string]any{"id": "inv1"}},
				}},
			})

			orders, err := testCase.build(NewTestClient(t, fake).Orders()).Get(context.Background())

			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)
				assert.Empty(t, fake.Requests())

				return
			}

			require.NoError(t, err)
			require.Len(t, orders, 1)
			assert.Equal(t, "Montreal", orders[0].Shipping.City)
			assert.Equal(t, "cad", orders[0].Currency.Code())
			require.Len(t, orders[0].Invoices, 1)
			assert.Equal(t, testCase.expectedPath, fake.Requests()[0].Path)
		})
	}
}

func TestOrderBuilder_Create(t *testing.T) {
	t.Parallel()

	var body map[string]any

	client := NewTestServer(t, func(r chi.Router) {
		r.Post("/orders/transactional", func(writer http.ResponseWriter, request *http.Request) {
			body = readJSON(t, request)

			writeJSON(t, writer, http.StatusCreated, map[string]any{"data": map[string]any{"id": "o1"}})
		})
	})

	order, err := client.Orders().
		SetCustomer("c1").
		SetCurrency("cad").
		SetGiftCard("GIFT").
		SetTags("vip").
		SetShippingCity("Montreal").
		AddProducts(&alldressed.LineItem{ID: "p1"}, &alldressed.LineItem{ID: "p2", Quantity: 3}).
		AddPackage("pkg1", &alldressed.LineItem{ID: "p3", Quantity: 2}).
		Create(context.Background(), alldressed.OrderCreate{Menu: "2024-05-06", Discount: "WELCOME"})
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID())

	assert.Equal(t, "2024-05-06", body["menu"])
	assert.Equal(t, "c1", body["customer"])
	assert.Equal(t, "cad", body["currency"])
	assert.Equal(t, "GIFT", body["gift_card"])
	assert.Equal(t, "WELCOME", body["discount"])
	assert.Equal(t, []any{"vip"}, body["tags"])
	assert.Equal(t, "Montreal", body["shipping_city"])
	assert.Equal(t, []any{
		map[string]any{"id": "p1", "quantity": float64(1)},
		map[string]any{"id": "p2", "quantity": float64(3)},
	}, body["products"])
	assert.Equal(t, []any{
		map[string]any{"id": "pkg1", "products": []any{map[string]any{"id": "p3", "quantity": float64(2)}}},
	}, body["packages"])

	assert.NotContains(t, body, "payment_method")
	assert.NotContains(t, body, "delivery_schedule")
}

func TestOrderBuilder_CreateRequiresContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    alldressed.OrderCreate
		wantErr error
	}{
		{name: "menu", args: alldressed.OrderCreate{Customer: "c1", Currency: "cad"}, wantErr: alldressed.ErrMissingMenu},
		{name: "customer", args: alldressed.OrderCreate{Menu: "m1"}, wantErr: alldressed.ErrMissingCustomer},
		{name: "currency", args: alldressed.OrderCreate{Menu: "m1", Customer: "c1"}, wantErr: alldressed.ErrMissingCurrency},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			fake := internalhttp.NewFakeTransport()

			_, err := NewTestClient(t, fake).Orders().Create(context.Background(), testCase.args)
			require.ErrorIs(t, err, testCase.wantErr)
			assert.Empty(t, fake.Requests())
		})
	}
}

func TestOrderBuilder_Pay(t *testing.T) {
	t.Parallel()

	fake := internalhttp.NewFakeTransport().FakeJSON("POST customers/c1/orders/o1/pay", map[string]any{
		"data": map[string]any{"id": "o1", "status": "paid"},
	})
	client := NewTestClient(t, fake)

	order, err := client.Orders().ForCustomer("c1").WithOption("id", "o1").Pay(context.Background(), alldressed.OrderPayment{
		Currency:      "cad",
		PaymentMethod: "pm1",
	})
	require.NoError(t, err)
	assert.Equal(t, "paid", order.String("status"))

	assert.Equal(t, map[string]any{
		"customer":       "c1",
		"order":          "o1",
		"currency":       "cad",
		"payment_method": "pm1",
	}, fake.Requests()[0].JSON())

	_, err = client.Orders().Pay(context.Background(), alldressed.OrderPayment{Customer: "c1", Currency: "cad"})
	require.ErrorIs(t, err, alldressed.ErrMissingOrder)
	assert.Len(t, fake.Requests(), 1)
}
