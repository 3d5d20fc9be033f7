package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

func TestTransactionBuilder_Create(t *testing.T) {
	t.Parallel()

	subscription, err := alldressed.Decode[alldressed.Subscription]([]byte(`{"id":"s1","payment_method":{"id":"pm-sub"}}`))
	require.NoError(t, err)

	tests := []struct {
		name           string
		build          func(alldressed.TransactionBuilder) alldressed.TransactionBuilder
		args           alldressed.TransactionCreate
		expectedMethod string
		expectedMenu   any
	}{
		{
			name:           "falls back to the method of the subscription",
			build:          func(b alldressed.TransactionBuilder) alldressed.TransactionBuilder { return b.ForSubscription(subscription) },
			expectedMethod: "pm-sub",
		},
		{
			name: "option overrides the subscription",
			build: func(b alldressed.TransactionBuilder) alldressed.TransactionBuilder {
				return b.ForSubscription(subscription).SetPaymentMethod("pm-option").ForMenu("2024-05-06")
			},
			expectedMethod: "pm-option",
			expectedMenu:   "2024-05-06",
		},
		{
			name:           "argument wins",
			build:          func(b alldressed.TransactionBuilder) alldressed.TransactionBuilder { return b.SetPaymentMethod("pm-option") },
			args:           alldressed.TransactionCreate{Subscription: subscription, PaymentMethod: "pm-arg"},
			expectedMethod: "pm-arg",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			fake := internalhttp.NewFakeTransport().FakeJSON("POST subscriptions/s1/payments", map[string]any{
				"data": map[string]any{"id": "tx1", "status": "succeeded"},
			})

			transaction, err := testCase.build(NewTestClient(t, fake).Transactions()).Create(context.Background(), testCase.args)
			require.NoError(t, err)
			assert.Equal(t, "tx1", transaction.ID())

			body := fake.Requests()[0].JSON()
			assert.Equal(t, testCase.expectedMethod, body["payment_method"])
			if testCase.expectedMenu == nil {
				assert.NotContains(t, body, "menu")
			} else {
				assert.Equal(t, testCase.expectedMenu, body["menu"])
			}
		})
	}
}

func TestTransactionBuilder_Errors(t *testing.T) {
	t.Parallel()

	fake := internalhttp.NewFakeTransport()
	client := NewTestClient(t, fake)

	_, err := client.Transactions().Create(context.Background(), alldressed.TransactionCreate{})
	require.ErrorIs(t, err, alldressed.ErrMissingSubscription)

	bare := &alldressed.Subscription{Entity: alldressed.NewEntity(alldressed.Attributes{"id": "s1"})}
	_, err = client.Transactions().ForSubscription(bare).Create(context.Background(), alldressed.TransactionCreate{})
	require.ErrorIs(t, err, alldressed.ErrMissingPaymentMethod)

	_, err = client.Transactions().All(context.Background())
	require.ErrorIs(t, err, alldressed.ErrNotImplemented)

	assert.Empty(t, fake.Requests())
}
