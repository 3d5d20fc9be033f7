package client

import (
	"context"
	"fmt"
	"maps"
	"net/http"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// OrderBuilder implements alldressed.OrderBuilder.
type OrderBuilder struct {
	builder[alldressed.Order]
	shippingSetter[alldressed.OrderBuilder]

	products []*alldressed.LineItem
	packages []alldressed.Attributes
}

// NewOrderBuilder creates a new order builder.
func NewOrderBuilder(httpClient *internalhttp.Client) *OrderBuilder {
	b := &OrderBuilder{}
	b.builder = newBuilder(httpClient, b.Get)
	b.shippingSetter = shippingSetter[alldressed.OrderBuilder]{store: b.options, self: b}

	return b
}

// WithOption sets an option at a dotted key.
func (b *OrderBuilder) WithOption(key string, value any) alldressed.OrderBuilder {
	b.set(key, value)

	return b
}

func (b *OrderBuilder) ForCustomer(customer string) alldressed.OrderBuilder {
	return b.WithOption("customer", customer)
}

func (b *OrderBuilder) ForSubscription(subscription string) alldressed.OrderBuilder {
	return b.WithOption("subscription", subscription)
}

// Transactional lists the one-off orders of the customer.
func (b *OrderBuilder) Transactional() alldressed.OrderBuilder {
	return b.WithOption("transactional", true)
}

// Pending fetches the pending state of the order set with Find.
func (b *OrderBuilder) Pending() alldressed.OrderBuilder {
	return b.WithOption("pending", true)
}

func (b *OrderBuilder) SetMenu(menu string) alldressed.OrderBuilder {
	return b.WithOption("menu", menu)
}

func (b *OrderBuilder) SetCustomer(customer string) alldressed.OrderBuilder {
	return b.WithOption("customer", customer)
}

func (b *OrderBuilder) SetCurrency(currency string) alldressed.OrderBuilder {
	return b.WithOption("currency", currency)
}

func (b *OrderBuilder) SetPaymentMethod(method string) alldressed.OrderBuilder {
	return b.WithOption("payment_method", method)
}

func (b *OrderBuilder) SetDeliverySchedule(schedule string) alldressed.OrderBuilder {
	return b.WithOption("delivery_schedule", schedule)
}

func (b *OrderBuilder) SetDeliveryNotes(notes string) alldressed.OrderBuilder {
	return b.WithOption("delivery_notes", notes)
}

// SetDiscount sets the discount code to redeem.
func (b *OrderBuilder) SetDiscount(code string) alldressed.OrderBuilder {
	return b.WithOption("discount", code)
}

// SetGiftCard sets the gift card code to redeem.
func (b *OrderBuilder) SetGiftCard(code string) alldressed.OrderBuilder {
	return b.WithOption("gift_card", code)
}

func (b *OrderBuilder) SetTags(tags ...string) alldressed.OrderBuilder {
	return b.WithOption("tags", tags)
}

// AddProducts adds products outside of any package.
func (b *OrderBuilder) AddProducts(products ...*alldressed.LineItem) alldressed.OrderBuilder {
	b.products = append(b.products, products...)

	return b
}

// AddPackage adds a package with the products picked in it.
func (b *OrderBuilder) AddPackage(pkg string, products ...*alldressed.LineItem) alldressed.OrderBuilder {
	b.packages = append(b.packages, alldressed.Attributes{
		"id":       pkg,
		"products": alldressed.LineItemsPayload(products),
	})

	return b
}

// Get lists the orders of the subscription, the transactional orders of the
// customer, or the pending state of one order.
func (b *OrderBuilder) Get(ctx context.Context) ([]*alldressed.Order, error) {
	var endpoint string

	switch {
	case b.options.Bool("transactional"):
		customer := b.option("customer")
		if customer == "" {
			return nil, alldressed.ErrMissingCustomer
		}

		endpoint = fmt.Sprintf("customers/%s/orders", esc(customer))
	case b.options.Bool("pending"):
		customer := b.option("customer")
		if customer == "" {
			return nil, alldressed.ErrMissingCustomer
		}

		id := b.option("id")
		if id == "" {
			return nil, alldressed.ErrMissingID
		}

		endpoint = fmt.Sprintf("customers/%s/orders/%s/pending", esc(customer), esc(id))
	default:
		subscription := b.option("subscription")
		if subscription == "" {
			return nil, alldressed.ErrMissingSubscription
		}

		endpoint = fmt.Sprintf("subscriptions/%s/orders", esc(subscription))
	}

	orders, err := b.list(ctx, "getting orders", endpoint, nil)
	if err != nil {
		return nil, b.fail("getting orders", endpoint, err)
	}

	return orders, nil
}

// Create places a transactional order for the menu.
func (b *OrderBuilder) Create(ctx context.Context, args alldressed.OrderCreate) (*alldressed.Order, error) {
	menu := firstOf(args.Menu, b.option("menu"))
	if menu == "" {
		return nil, alldressed.ErrMissingMenu
	}

	customer := firstOf(args.Customer, b.option("customer"))
	if customer == "" {
		return nil, alldressed.ErrMissingCustomer
	}

	currency := firstOf(args.Currency, b.option("currency"))
	if currency == "" {
		return nil, alldressed.ErrMissingCurrency
	}

	products := args.Products
	if products == nil {
		products = b.products
	}

	tags := args.Tags
	if tags == nil {
		tags, _ = b.options.Get("tags").([]string)
	}

	var packages any
	if len(b.packages) > 0 {
		packages = b.packages
	}

	body := payload{
		"currency":          currency,
		"customer":          customer,
		"gift_card":         optional(firstOf(args.GiftCard, b.option("gift_card"))),
		"payment_method":    optional(firstOf(args.PaymentMethod, b.option("payment_method"))),
		"delivery_schedule": optional(firstOf(args.DeliverySchedule, b.option("delivery_schedule"))),
		"delivery_notes":    optional(b.option("delivery_notes")),
		"menu":              menu,
		"products":          alldressed.LineItemsPayload(products),
		"packages":          packages,
		"discount":          optional(firstOf(args.Discount, b.option("discount"))),
		"tags":              tags,
	}

	maps.Copy(body, b.shippingPayload())

	endpoint := "orders/transactional"
	b.debug("creating order", endpoint)

	order, err := send[alldressed.Order](ctx, b.httpClient, http.MethodPost, endpoint, compact(body))
	if err != nil {
		return nil, b.fail("creating order", endpoint, err)
	}

	return order, nil
}

// Pay charges a pending order.
func (b *OrderBuilder) Pay(ctx context.Context, args alldressed.OrderPayment) (*alldressed.Order, error) {
	order := firstOf(args.Order, b.option("id"))
	if order == "" {
		return nil, alldressed.ErrMissingOrder
	}

	customer := firstOf(args.Customer, b.option("customer"))
	if customer == "" {
		return nil, alldressed.ErrMissingCustomer
	}

	currency := firstOf(args.Currency, b.option("currency"))
	if currency == "" {
		return nil, alldressed.ErrMissingCurrency
	}

	endpoint := fmt.Sprintf("customers/%s/orders/%s/pay", esc(customer), esc(order))
	b.debug("paying order", endpoint)

	paid, err := send[alldressed.Order](ctx, b.httpClient, http.MethodPost, endpoint, compact(payload{
		"customer":       customer,
		"order":          order,
		"currency":       currency,
		"payment_method": optional(firstOf(args.PaymentMethod, b.option("payment_method"))),
	}))
	if err != nil {
		return nil, b.fail("paying order", endpoint, err)
	}

	return paid, nil
}

var _ alldressed.OrderBuilder = (*OrderBuilder)(nil)
