package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// DiscountBuilder implements alldressed.DiscountBuilder.
type DiscountBuilder struct {
	builder[alldressed.Discount]
}

// NewDiscountBuilder creates a new discount builder.
func NewDiscountBuilder(httpClient *internalhttp.Client) *DiscountBuilder {
	b := &DiscountBuilder{}
	b.builder = newBuilder(httpClient, b.Get)

	return b
}

// WithOption sets an option at a dotted key.
func (b *DiscountBuilder) WithOption(key string, value any) alldressed.DiscountBuilder {
	b.set(key, value)

	return b
}

func (b *DiscountBuilder) ForCode(code string) alldressed.DiscountBuilder {
	return b.WithOption("code", code)
}

// ForCustomer checks the code against the customer in Get and creates a
// referral code of the customer in Create.
func (b *DiscountBuilder) ForCustomer(customer string) alldressed.DiscountBuilder {
	return b.WithOption("customer", customer)
}

func (b *DiscountBuilder) ForSubscription(subscription string) alldressed.DiscountBuilder {
	return b.WithOption("subscription", subscription)
}

// WithReward sets the reward granted to the referrer of a referral code.
func (b *DiscountBuilder) WithReward(rewardType alldressed.DiscountValueType, value int, currency string) alldressed.DiscountBuilder {
	b.set("reward.type", string(rewardType))
	b.set("reward.value", value)
	b.set("reward.currency", currency)

	return b
}

// Get looks up the code set with ForCode or Find. A 404 wraps
// alldressed.ErrDiscountNotFound.
func (b *DiscountBuilder) Get(ctx context.Context) ([]*alldressed.Discount, error) {
	code := firstOf(b.option("code"), b.option("id"))
	if code == "" {
		return nil, alldressed.ErrMissingDiscountCode
	}

	endpoint := "discounts/" + esc(code)

	discounts, err := b.list(ctx, "getting discounts", endpoint, params(
		"customer", b.option("customer"),
		"subscription", b.option("subscription"),
	))
	if err != nil {
		return nil, b.fail("getting discounts", endpoint, notFound(err, alldressed.ResourceDiscount, code))
	}

	return discounts, nil
}

// Create creates a discount code, or a referral code when a customer is set.
func (b *DiscountBuilder) Create(ctx context.Context, args alldressed.DiscountCreate) (*alldressed.Discount, error) {
	endpoint := "discounts"
	if customer := b.option("customer"); customer != "" {
		endpoint = fmt.Sprintf("customers/%s/discounts", esc(customer))
	}

	values := make([]alldressed.Attributes, 0, len(args.Values))
	for _, value := range args.Values {
		values = append(values, value.ToPayload())
	}

	reward, _ := b.options.Get("reward").(map[string]any)

	b.debug("creating discount", endpoint)

	discount, err := send[alldressed.Discount](ctx, b.httpClient, http.MethodPost, endpoint, filled(payload{
		"code":              args.Code,
		"orders":            args.Orders,
		"new_customers":     args.NewCustomers,
		"new_subscriptions": args.NewSubscriptions,
		"values":            values,
		"reward":            filled(reward),
	}))
	if err != nil {
		return nil, b.fail("creating discount", endpoint, err)
	}

	return discount, nil
}

// Delete removes the discount applied to the subscription.
func (b *DiscountBuilder) Delete(ctx context.Context) error {
	subscription := b.option("subscription")
	if subscription == "" {
		return alldressed.ErrMissingSubscription
	}

	endpoint := fmt.Sprintf("subscriptions/%s/discount", esc(subscription))

	return b.exec(ctx, "deleting discount", http.MethodDelete, endpoint, nil)
}

var _ alldressed.DiscountBuilder = (*DiscountBuilder)(nil)
