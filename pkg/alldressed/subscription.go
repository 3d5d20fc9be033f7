package alldressed

import "context"

// Subscription is a recurring delivery for a customer.
type Subscription struct {
	Entity

	Currency      *Currency      `json:"-"`
	Customer      *Customer      `json:"-"`
	PaymentMethod *PaymentMethod `json:"-"`
	Discount      *Discount      `json:"-"`
	Shipping      *Address       `json:"-"`
	Choices       []*Choice      `json:"-"`
	Orders        []*Order       `json:"-"`
	Menus         []*Menu        `json:"-"`
}

func (s *Subscription) relations() relations {
	return relations{
		"currency":       &s.Currency,
		"customer":       &s.Customer,
		"payment_method": &s.PaymentMethod,
		"discount":       &s.Discount,
		"shipping":       &s.Shipping,
		"choices":        &s.Choices,
		"orders":         &s.Orders,
		"menus":          &s.Menus,
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Subscription) UnmarshalJSON(data []byte) error {
	return s.decode(data, s.relations())
}

// MarshalJSON implements json.Marshaler.
func (s Subscription) MarshalJSON() ([]byte, error) {
	return s.encode(s.relations())
}

// Status returns the remote status, e.g. active or paused.
func (s *Subscription) Status() string {
	return s.String("status")
}

// Frequency returns the number of weeks between deliveries.
func (s *Subscription) Frequency() Frequency {
	return Frequency(s.Int("frequency"))
}

// Refresh fetches the subscription again by id.
func (s *Subscription) Refresh(ctx context.Context, client Client) (*Subscription, error) {
	if s.ID() == "" {
		return nil, ErrMissingSubscription
	}

	return client.Subscriptions().Find(ctx, s.ID())
}
