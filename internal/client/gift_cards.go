package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// GiftCardBuilder implements alldressed.GiftCardBuilder.
type GiftCardBuilder struct {
	builder[alldressed.GiftCard]
}

// NewGiftCardBuilder creates a new gift card builder.
func NewGiftCardBuilder(httpClient *internalhttp.Client) *GiftCardBuilder {
	b := &GiftCardBuilder{}
	b.builder = newBuilder(httpClient, b.Get)

	return b
}

// WithOption sets an option at a dotted key.
func (b *GiftCardBuilder) WithOption(key string, value any) alldressed.GiftCardBuilder {
	b.set(key, value)

	return b
}

func (b *GiftCardBuilder) ForCode(code string) alldressed.GiftCardBuilder {
	return b.WithOption("code", code)
}

func (b *GiftCardBuilder) ForCustomer(customer string) alldressed.GiftCardBuilder {
	return b.WithOption("customer", customer)
}

func (b *GiftCardBuilder) SetPaymentMethod(method string) alldressed.GiftCardBuilder {
	return b.WithOption("payment_method", method)
}

func (b *GiftCardBuilder) SetSender(name, email string) alldressed.GiftCardBuilder {
	return b.WithOption("sender", map[string]any{
		"name":  name,
		"email": email,
	})
}

// SetPrimaryReceiver sets who receives the card and when. The message is
// optional.
func (b *GiftCardBuilder) SetPrimaryReceiver(name, email string, delivery time.Time, message string) alldressed.GiftCardBuilder {
	return b.WithOption("receiver.primary", map[string]any(filled(payload{
		"name":          name,
		"email":         email,
		"message":       message,
		"delivery_date": utc(delivery),
	})))
}

// Get lists the gift cards, or looks one up by code or id. A 404 on a lookup
// wraps alldressed.ErrGiftCardNotFound.
func (b *GiftCardBuilder) Get(ctx context.Context) ([]*alldressed.GiftCard, error) {
	endpoint := "gift-cards"

	key := firstOf(b.option("code"), b.option("id"))
	if key != "" {
		endpoint += "/" + esc(key)
	}

	cards, err := b.list(ctx, "getting gift cards", endpoint, nil)
	if err != nil {
		return nil, b.fail("getting gift cards", endpoint, notFound(err, alldressed.ResourceGiftCard, key))
	}

	return cards, nil
}

// Purchase buys gift cards worth value, one per receiver.
func (b *GiftCardBuilder) Purchase(ctx context.Context, args alldressed.GiftCardPurchase) ([]*alldressed.GiftCard, error) {
	customer := firstOf(args.Customer, b.option("customer"))
	if customer == "" {
		return nil, alldressed.ErrMissingCustomer
	}

	method := firstOf(args.PaymentMethod, b.option("payment_method"))
	if method == "" {
		return nil, alldressed.ErrMissingPaymentMethod
	}

	if args.Currency == "" {
		return nil, alldressed.ErrMissingCurrency
	}

	endpoint := "gift-cards/purchase"
	b.debug("purchasing gift cards", endpoint)

	resp, err := b.httpClient.Post(ctx, endpoint, payload{
		"value":          args.Value,
		"sender":         b.options.Get("sender"),
		"receiver":       b.options.Get("receiver"),
		"currency":       args.Currency,
		"customer":       customer,
		"payment_method": method,
	})
	if err != nil {
		return nil, b.fail("purchasing gift cards", endpoint, err)
	}

	var purchased struct {
		Cards []*alldressed.GiftCard `json:"cards"`
	}

	if err := json.Unmarshal(resp.Body, &purchased); err != nil {
		return nil, fmt.Errorf("parsing gift card purchase response: %w", err)
	}

	return purchased.Cards, nil
}

var _ alldressed.GiftCardBuilder = (*GiftCardBuilder)(nil)
