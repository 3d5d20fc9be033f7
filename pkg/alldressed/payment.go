package alldressed

// PaymentMethod is a card saved for a customer with a payment gateway.
type PaymentMethod struct {
	Entity

	Gateway *PaymentGateway `json:"-"`
	Billing *Address        `json:"-"`
}

func (m *PaymentMethod) relations() relations {
	return relations{
		"gateway": &m.Gateway,
		"billing": &m.Billing,
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	return m.decode(data, m.relations())
}

// MarshalJSON implements json.Marshaler.
func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return m.encode(m.relations())
}

// IsPrimary reports whether this is the default method of the customer.
func (m *PaymentMethod) IsPrimary() bool {
	return m.Bool("primary")
}

// PaymentGateway is a payment processor configured on the account.
type PaymentGateway struct {
	Entity
}
