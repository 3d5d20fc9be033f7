package alldressed

import (
	"context"
	"encoding/json"
)

// Customer is a customer of the account.
type Customer struct {
	Entity

	Currency       *Currency        `json:"-"`
	Shipping       *Address         `json:"-"`
	Billing        *Address         `json:"-"`
	PaymentMethods []*PaymentMethod `json:"-"`
	Subscriptions  []*Subscription  `json:"-"`
}

// NewCustomer returns a customer built from attrs, ready for Save.
func NewCustomer(attrs Attributes) *Customer {
	return &Customer{Entity: NewEntity(attrs)}
}

func (c *Customer) relations() relations {
	return relations{
		"currency":        &c.Currency,
		"shipping":        &c.Shipping,
		"billing":         &c.Billing,
		"payment_methods": &c.PaymentMethods,
		"subscriptions":   &c.Subscriptions,
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Customer) UnmarshalJSON(data []byte) error {
	return c.decode(data, c.relations())
}

// MarshalJSON implements json.Marshaler.
func (c Customer) MarshalJSON() ([]byte, error) {
	return c.encode(c.relations())
}

// Email returns the email address.
func (c *Customer) Email() string {
	return c.String("email")
}

// Save creates the customer when it has no id yet and updates it otherwise.
func (c *Customer) Save(ctx context.Context, client Client) (*Customer, error) {
	if c.ID() == "" {
		return client.Customers().Create(ctx, c.Attributes())
	}

	return client.Customers().Update(ctx, c.ID(), c.Attributes())
}

var (
	_ json.Unmarshaler = (*Customer)(nil)
	_ json.Marshaler   = Customer{}
)
