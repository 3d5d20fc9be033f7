package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// TransactionBuilder implements alldressed.TransactionBuilder.
type TransactionBuilder struct {
	builder[alldressed.Transaction]

	subscription *alldressed.Subscription
}

// NewTransactionBuilder creates a new transaction builder.
func NewTransactionBuilder(httpClient *internalhttp.Client) *TransactionBuilder {
	b := &TransactionBuilder{}
	b.builder = newBuilder(httpClient, b.Get)

	return b
}

// WithOption sets an option at a dotted key.
func (b *TransactionBuilder) WithOption(key string, value any) alldressed.TransactionBuilder {
	b.set(key, value)

	return b
}

func (b *TransactionBuilder) ForMenu(menu string) alldressed.TransactionBuilder {
	return b.WithOption("menu", menu)
}

// ForSubscription sets the subscription to charge. Its payment method is the
// fallback of Create.
func (b *TransactionBuilder) ForSubscription(subscription *alldressed.Subscription) alldressed.TransactionBuilder {
	b.subscription = subscription

	return b
}

func (b *TransactionBuilder) SetPaymentMethod(method string) alldressed.TransactionBuilder {
	return b.WithOption("payment_method", method)
}

// Get is not supported by the API.
func (b *TransactionBuilder) Get(context.Context) ([]*alldressed.Transaction, error) {
	return nil, fmt.Errorf("listing transactions: %w", alldressed.ErrNotImplemented)
}

// Create charges the subscription for the menu.
func (b *TransactionBuilder) Create(ctx context.Context, args alldressed.TransactionCreate) (*alldressed.Transaction, error) {
	subscription := args.Subscription
	if subscription == nil {
		subscription = b.subscription
	}

	if subscription == nil || subscription.ID() == "" {
		return nil, alldressed.ErrMissingSubscription
	}

	method := firstOf(args.PaymentMethod, b.option("payment_method"))
	if method == "" && subscription.PaymentMethod != nil {
		method = subscription.PaymentMethod.ID()
	}

	if method == "" {
		return nil, alldressed.ErrMissingPaymentMethod
	}

	endpoint := fmt.Sprintf("subscriptions/%s/payments", esc(subscription.ID()))
	b.debug("creating transaction", endpoint)

	transaction, err := send[alldressed.Transaction](ctx, b.httpClient, http.MethodPost, endpoint, compact(payload{
		"menu":           optional(b.option("menu")),
		"payment_method": method,
	}))
	if err != nil {
		return nil, b.fail("creating transaction", endpoint, err)
	}

	return transaction, nil
}

var _ alldressed.TransactionBuilder = (*TransactionBuilder)(nil)
