package client

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"time"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// SubscriptionBuilder implements alldressed.SubscriptionBuilder.
type SubscriptionBuilder struct {
	builder[alldressed.Subscription]
	shippingSetter[alldressed.SubscriptionBuilder]
}

// NewSubscriptionBuilder creates a new subscription builder.
func NewSubscriptionBuilder(httpClient *internalhttp.Client) *SubscriptionBuilder {
	b := &SubscriptionBuilder{}
	b.builder = newBuilder(httpClient, b.Get)
	b.shippingSetter = shippingSetter[alldressed.SubscriptionBuilder]{store: b.options, self: b}

	return b
}

// WithOption sets an option at a dotted key.
func (b *SubscriptionBuilder) WithOption(key string, value any) alldressed.SubscriptionBuilder {
	b.set(key, value)

	return b
}

// For targets the mutations at a subscription.
func (b *SubscriptionBuilder) For(subscription string) alldressed.SubscriptionBuilder {
	return b.WithOption("subscription", subscription)
}

// ForCustomer scopes Get to a customer and sets the customer of Create.
func (b *SubscriptionBuilder) ForCustomer(customer string) alldressed.SubscriptionBuilder {
	return b.WithOption("customer", customer)
}

func (b *SubscriptionBuilder) ForCurrency(currency string) alldressed.SubscriptionBuilder {
	return b.WithOption("currency", currency)
}

func (b *SubscriptionBuilder) ForDeliverySchedule(schedule string) alldressed.SubscriptionBuilder {
	return b.WithOption("schedule", schedule)
}

// ForMenu includes the choices of the menu in Get.
func (b *SubscriptionBuilder) ForMenu(menu string) alldressed.SubscriptionBuilder {
	return b.WithOption("menu", menu)
}

// WithMenus includes the upcoming menus in Get.
func (b *SubscriptionBuilder) WithMenus() alldressed.SubscriptionBuilder {
	return b.WithOption("menus", true)
}

func (b *SubscriptionBuilder) Backoff() alldressed.SubscriptionBuilder {
	return b.WithOption("backoff", true)
}

func (b *SubscriptionBuilder) Bill() alldressed.SubscriptionBuilder {
	return b.WithOption("bill", true)
}

func (b *SubscriptionBuilder) Name(name string) alldressed.SubscriptionBuilder {
	return b.WithOption("name", name)
}

// SetChoices sets the choices sent by Create.
func (b *SubscriptionBuilder) SetChoices(choices ...*alldressed.Choice) alldressed.SubscriptionBuilder {
	payload := make([]alldressed.Attributes, 0, len(choices))
	for _, choice := range choices {
		payload = append(payload, choice.ToPayload())
	}

	return b.WithOption("choices", payload)
}

func (b *SubscriptionBuilder) SetDeliveryNotes(notes string) alldressed.SubscriptionBuilder {
	return b.WithOption("delivery_notes", notes)
}

func (b *SubscriptionBuilder) SetDiscount(discount *alldressed.Discount) alldressed.SubscriptionBuilder {
	return b.WithOption("discount", discount)
}

func (b *SubscriptionBuilder) SetPaymentMethod(method string) alldressed.SubscriptionBuilder {
	return b.WithOption("payment_method", method)
}

// Get lists the subscriptions, of the customer when one is set.
func (b *SubscriptionBuilder) Get(ctx context.Context) ([]*alldressed.Subscription, error) {
	endpoint := "subscriptions"
	if customer := b.option("customer"); customer != "" {
		endpoint = fmt.Sprintf("customers/%s/%s", esc(customer), endpoint)
	}

	if id := b.option("id"); id != "" {
		endpoint += "/" + esc(id)
	}

	query := params("choices", b.option("menu"))
	if b.options.Bool("menus") {
		query.Set("menus", "1")
	}

	subscriptions, err := b.list(ctx, "getting subscriptions", endpoint, query)
	if err != nil {
		return nil, b.fail("getting subscriptions", endpoint, err)
	}

	return subscriptions, nil
}

// Create starts a subscription whose first delivery is args.Menu.
func (b *SubscriptionBuilder) Create(ctx context.Context, args alldressed.SubscriptionCreate) (*alldressed.Subscription, error) {
	customer := firstOf(args.Customer, b.option("customer"))
	if customer == "" {
		return nil, alldressed.ErrMissingCustomer
	}

	currency := firstOf(args.Currency, b.option("currency"))
	if currency == "" {
		return nil, alldressed.ErrMissingCurrency
	}

	method := firstOf(args.PaymentMethod, b.option("payment_method"))
	if method == "" {
		return nil, alldressed.ErrMissingPaymentMethod
	}

	schedule := firstOf(args.DeliverySchedule, b.option("schedule"))
	if schedule == "" {
		return nil, alldressed.ErrMissingDeliverySchedule
	}

	discount := args.Discount
	if discount == nil {
		discount, _ = b.options.Get("discount").(*alldressed.Discount)
	}

	body := payload{
		"backoff":           b.options.Get("backoff"),
		"bill":              b.options.Get("bill"),
		"choices":           b.options.Get("choices"),
		"customer":          customer,
		"currency":          currency,
		"delivery_schedule": schedule,
		"frequency":         int(args.Frequency),
		"menu":              utc(args.Menu),
		"payment_method":    method,
		"delivery_notes":    optional(b.option("delivery_notes")),
		"name":              optional(b.option("name")),
	}

	if discount != nil {
		body["discount"] = optional(discount.Code())
		body["discount_choices"] = alldressed.DiscountItemChoicesPayload(discount.Choices)
	}

	maps.Copy(body, b.shippingPayload())

	endpoint := "subscriptions"
	b.debug("creating subscription", endpoint)

	subscription, err := send[alldressed.Subscription](ctx, b.httpClient, http.MethodPost, endpoint, compact(body))
	if err != nil {
		return nil, b.fail("creating subscription", endpoint, err)
	}

	return subscription, nil
}

// endpoint returns subscriptions/{id}/{action} for the subscription set with
// For.
func (b *SubscriptionBuilder) endpoint(action string) (string, error) {
	subscription := b.option("subscription")
	if subscription == "" {
		return "", alldressed.ErrMissingSubscription
	}

	return fmt.Sprintf("subscriptions/%s/%s", esc(subscription), action), nil
}

// Cancel cancels the subscription, optionally giving reasons.
func (b *SubscriptionBuilder) Cancel(ctx context.Context, reasons ...string) error {
	endpoint, err := b.endpoint("cancel")
	if err != nil {
		return err
	}

	return b.exec(ctx, "canceling subscription", http.MethodPost, endpoint, filled(payload{
		"reasons": reasons,
	}))
}

// Pause suspends deliveries until the given date.
func (b *SubscriptionBuilder) Pause(ctx context.Context, until time.Time) error {
	endpoint, err := b.endpoint("pause")
	if err != nil {
		return err
	}

	return b.exec(ctx, "pausing subscription", http.MethodPost, endpoint, payload{
		"until": until.UTC(),
	})
}

func (b *SubscriptionBuilder) Resume(ctx context.Context) error {
	endpoint, err := b.endpoint("resume")
	if err != nil {
		return err
	}

	return b.exec(ctx, "resuming subscription", http.MethodPost, endpoint, nil)
}

// ApplyDiscount applies the discount code, with the free items picked for the
// menu when the discount grants some.
func (b *SubscriptionBuilder) ApplyDiscount(ctx context.Context, code string, choices []*alldressed.DiscountItemChoice, menu string) error {
	if code == "" {
		return alldressed.ErrMissingDiscountCode
	}

	endpoint, err := b.endpoint("discount")
	if err != nil {
		return err
	}

	return b.exec(ctx, "applying discount", http.MethodPut, endpoint, filled(payload{
		"code":    code,
		"choices": alldressed.DiscountItemChoicesPayload(choices),
		"menu":    menu,
	}))
}

// UpdateFreeItems replaces the free items picked for the applied discount.
func (b *SubscriptionBuilder) UpdateFreeItems(ctx context.Context, choices []*alldressed.DiscountItemChoice, menu string) error {
	endpoint, err := b.endpoint("discount/choices")
	if err != nil {
		return err
	}

	body := filled(payload{"menu": menu})
	body["choices"] = []alldressed.Attributes{}

	if len(choices) > 0 {
		body["choices"] = alldressed.DiscountItemChoicesPayload(choices)
	}

	return b.exec(ctx, "updating free items", http.MethodPut, endpoint, body)
}

func (b *SubscriptionBuilder) UpdateFrequency(ctx context.Context, frequency alldressed.Frequency) error {
	endpoint, err := b.endpoint("frequency")
	if err != nil {
		return err
	}

	return b.exec(ctx, "updating frequency", http.MethodPut, endpoint, payload{
		"frequency": int(frequency),
	})
}

// UpdateNextDeliveryDate moves the next delivery to the menu, delivered on
// the schedule.
func (b *SubscriptionBuilder) UpdateNextDeliveryDate(ctx context.Context, menu, schedule string) error {
	endpoint, err := b.endpoint("next-delivery-date")
	if err != nil {
		return err
	}

	if menu == "" {
		return alldressed.ErrMissingMenu
	}

	if schedule == "" {
		return alldressed.ErrMissingDeliverySchedule
	}

	return b.exec(ctx, "updating next delivery date", http.MethodPatch, endpoint, payload{
		"menu":     menu,
		"schedule": schedule,
	})
}

// UpdateShippingAddress moves deliveries to address, which may change the
// schedule and frequency available.
func (b *SubscriptionBuilder) UpdateShippingAddress(ctx context.Context, address *alldressed.Address, notes, schedule string, frequency alldressed.Frequency) error {
	endpoint, err := b.endpoint("address")
	if err != nil {
		return err
	}

	if address == nil {
		return alldressed.ErrMissingShippingAddress
	}

	if schedule == "" {
		return alldressed.ErrMissingDeliverySchedule
	}

	body := payload{}
	maps.Copy(body, address.ToPayload(""))

	body["delivery_schedule"] = schedule
	body["frequency"] = int(frequency)
	body["notes"] = optional(notes)

	return b.exec(ctx, "updating shipping address", http.MethodPut, endpoint, compact(body))
}

var _ alldressed.SubscriptionBuilder = (*SubscriptionBuilder)(nil)
