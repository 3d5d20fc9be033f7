package client

import (
	"context"
	"fmt"
	"maps"
	"net/http"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// Billing option keys, also sent as is.
const (
	billingFirstName    = "billing_first_name"
	billingLastName     = "billing_last_name"
	billingPhone        = "billing_phone"
	billingAddressLine1 = "billing_address_line_1"
	billingAddressLine2 = "billing_address_line_2"
	billingCompany      = "billing_company"
	billingCity         = "billing_city"
	billingState        = "billing_state"
	billingPostcode     = "billing_postcode"
	billingCountry      = "billing_country"
)

var billingKeys = []string{
	billingFirstName,
	billingLastName,
	billingPhone,
	billingAddressLine1,
	billingAddressLine2,
	billingCompany,
	billingCity,
	billingState,
	billingPostcode,
	billingCountry,
}

// PaymentMethodBuilder implements alldressed.PaymentMethodBuilder.
type PaymentMethodBuilder struct {
	builder[alldressed.PaymentMethod]
}

// NewPaymentMethodBuilder creates a new payment method builder.
func NewPaymentMethodBuilder(httpClient *internalhttp.Client) *PaymentMethodBuilder {
	b := &PaymentMethodBuilder{}
	b.builder = newBuilder(httpClient, b.Get)

	return b
}

// WithOption sets an option at a dotted key.
func (b *PaymentMethodBuilder) WithOption(key string, value any) alldressed.PaymentMethodBuilder {
	b.set(key, value)

	return b
}

// For targets Delete, SetAsDefault and Update at a method.
func (b *PaymentMethodBuilder) For(method string) alldressed.PaymentMethodBuilder {
	return b.WithOption("id", method)
}

func (b *PaymentMethodBuilder) ForCustomer(customer string) alldressed.PaymentMethodBuilder {
	return b.WithOption("customer", customer)
}

func (b *PaymentMethodBuilder) ForGateway(gateway string) alldressed.PaymentMethodBuilder {
	return b.WithOption("gateway", gateway)
}

// ForSubscription makes Update replace the method of the subscription.
func (b *PaymentMethodBuilder) ForSubscription(subscription string) alldressed.PaymentMethodBuilder {
	return b.WithOption("subscription", subscription)
}

// AsPrimary makes the created method the default one of the customer.
func (b *PaymentMethodBuilder) AsPrimary() alldressed.PaymentMethodBuilder {
	return b.WithOption("primary", true)
}

// SetBillingAddress sets every billing field at once. Line 2 and company are
// only set when present. A nil address leaves the builder unchanged.
func (b *PaymentMethodBuilder) SetBillingAddress(firstName, lastName, phone string, address *alldressed.Address) alldressed.PaymentMethodBuilder {
	if address == nil {
		return b
	}

	if address.HasLine2() {
		b.SetBillingAddressLine2(address.Line2)
	}

	if address.HasCompany() {
		b.SetBillingCompany(address.Company)
	}

	return b.
		SetBillingFirstName(firstName).
		SetBillingLastName(lastName).
		SetBillingPhone(phone).
		SetBillingAddressLine1(address.Line1).
		SetBillingCity(address.City).
		SetBillingState(address.State).
		SetBillingPostcode(address.Postcode).
		SetBillingCountry(address.Country)
}

func (b *PaymentMethodBuilder) SetBillingFirstName(name string) alldressed.PaymentMethodBuilder {
	return b.WithOption(billingFirstName, name)
}

func (b *PaymentMethodBuilder) SetBillingLastName(name string) alldressed.PaymentMethodBuilder {
	return b.WithOption(billingLastName, name)
}

func (b *PaymentMethodBuilder) SetBillingPhone(number string) alldressed.PaymentMethodBuilder {
	return b.WithOption(billingPhone, number)
}

func (b *PaymentMethodBuilder) SetBillingAddressLine1(line string) alldressed.PaymentMethodBuilder {
	return b.WithOption(billingAddressLine1, line)
}

func (b *PaymentMethodBuilder) SetBillingAddressLine2(line string) alldressed.PaymentMethodBuilder {
	return b.WithOption(billingAddressLine2, line)
}

func (b *PaymentMethodBuilder) SetBillingCompany(company string) alldressed.PaymentMethodBuilder {
	return b.WithOption(billingCompany, company)
}

func (b *PaymentMethodBuilder) SetBillingCity(city string) alldressed.PaymentMethodBuilder {
	return b.WithOption(billingCity, city)
}

func (b *PaymentMethodBuilder) SetBillingState(state string) alldressed.PaymentMethodBuilder {
	return b.WithOption(billingState, state)
}

func (b *PaymentMethodBuilder) SetBillingPostcode(postcode string) alldressed.PaymentMethodBuilder {
	return b.WithOption(billingPostcode, postcode)
}

func (b *PaymentMethodBuilder) SetBillingCountry(country string) alldressed.PaymentMethodBuilder {
	return b.WithOption(billingCountry, country)
}

// Get lists the methods of the customer, or the one set with Find.
func (b *PaymentMethodBuilder) Get(ctx context.Context) ([]*alldressed.PaymentMethod, error) {
	customer := b.option("customer")
	if customer == "" {
		return nil, alldressed.ErrMissingCustomer
	}

	endpoint := fmt.Sprintf("customers/%s/billing/methods", esc(customer))
	if id := b.option("id"); id != "" {
		endpoint += "/" + esc(id)
	}

	methods, err := b.list(ctx, "getting payment methods", endpoint, nil)
	if err != nil {
		return nil, b.fail("getting payment methods", endpoint, err)
	}

	return methods, nil
}

// Create saves the card with the gateway. The billing address comes from the
// setters, completed by the address of the card. A 422 on the card number
// is returned as a *alldressed.CardError.
func (b *PaymentMethodBuilder) Create(ctx context.Context, args alldressed.PaymentMethodCreate) (*alldressed.PaymentMethod, error) {
	customer := firstOf(args.Customer, b.option("customer"))
	if customer == "" {
		return nil, alldressed.ErrMissingCustomer
	}

	gateway := firstOf(args.Gateway, b.option("gateway"))
	if gateway == "" {
		return nil, alldressed.ErrMissingPaymentGateway
	}

	billing := payload{}
	if args.Card != nil && args.Card.Address != nil {
		maps.Copy(billing, args.Card.Address.ToPayload("billing_"))
		delete(billing, "billing_address_type")
	}

	for _, key := range billingKeys {
		if value := b.option(key); value != "" {
			billing[key] = value
		}
	}

	if billing[billingAddressLine1] == nil {
		return nil, alldressed.ErrMissingBillingAddress
	}

	body := payload{
		"gateway": gateway,
		"primary": b.options.Bool("primary"),
	}

	if args.Card != nil {
		body["number"] = optional(args.Card.Number)
		body["month"] = optional(args.Card.Month)
		body["year"] = optional(args.Card.Year)
		body["cvc"] = optional(args.Card.CVC)
	}

	maps.Copy(body, billing)

	endpoint := fmt.Sprintf("customers/%s/billing/methods", esc(customer))
	b.debug("creating payment method", endpoint)

	method, err := send[alldressed.PaymentMethod](ctx, b.httpClient, http.MethodPost, endpoint, compact(body))
	if err != nil {
		return nil, b.fail("creating payment method", endpoint, err)
	}

	return method, nil
}

// methodEndpoint returns customers/{c}/billing/methods/{id}.
func (b *PaymentMethodBuilder) methodEndpoint() (string, error) {
	customer := b.option("customer")
	if customer == "" {
		return "", alldressed.ErrMissingCustomer
	}

	id := b.option("id")
	if id == "" {
		return "", alldressed.ErrMissingPaymentMethod
	}

	return fmt.Sprintf("customers/%s/billing/methods/%s", esc(customer), esc(id)), nil
}

func (b *PaymentMethodBuilder) Delete(ctx context.Context) error {
	endpoint, err := b.methodEndpoint()
	if err != nil {
		return err
	}

	return b.exec(ctx, "deleting payment method", http.MethodDelete, endpoint, nil)
}

// SetAsDefault makes the method primary, and the method of the active
// subscriptions of the customer when subscriptions is true.
func (b *PaymentMethodBuilder) SetAsDefault(ctx context.Context, subscriptions bool) error {
	endpoint, err := b.methodEndpoint()
	if err != nil {
		return err
	}

	return b.exec(ctx, "setting default payment method", http.MethodPatch, endpoint+"/primary", payload{
		"subscriptions": subscriptions,
	})
}

// Update sends attributes for the method. With a subscription set, it makes
// the method the one of the subscription instead.
func (b *PaymentMethodBuilder) Update(ctx context.Context, attributes alldressed.Attributes) error {
	var endpoint string

	if subscription := b.option("subscription"); subscription != "" {
		endpoint = fmt.Sprintf("subscriptions/%s/payment-method", esc(subscription))
	} else {
		var err error
		if endpoint, err = b.methodEndpoint(); err != nil {
			return err
		}
	}

	body := payload{}
	maps.Copy(body, attributes)
	body["payment_method"] = b.option("id")

	return b.exec(ctx, "updating payment method", http.MethodPut, endpoint, filled(body))
}

var _ alldressed.PaymentMethodBuilder = (*PaymentMethodBuilder)(nil)
