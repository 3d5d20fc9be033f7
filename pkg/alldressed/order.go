package alldressed

// Order is a delivery, either part of a subscription or transactional.
type Order struct {
	Entity

	Shipping *Address   `json:"-"`
	Billing  *Address   `json:"-"`
	Customer *Customer  `json:"-"`
	Currency *Currency  `json:"-"`
	Invoices []*Invoice `json:"-"`
}

func (o *Order) relations() relations {
	return relations{
		"shipping": &o.Shipping,
		"billing":  &o.Billing,
		"customer": &o.Customer,
		"currency": &o.Currency,
		"invoices": &o.Invoices,
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Order) UnmarshalJSON(data []byte) error {
	return o.decode(data, o.relations())
}

// MarshalJSON implements json.Marshaler.
func (o Order) MarshalJSON() ([]byte, error) {
	return o.encode(o.relations())
}

// LineItem is a product and quantity sent when placing an order.
type LineItem struct {
	ID       string
	Quantity int
}

// ToPayload returns the wire form. The quantity defaults to 1.
func (l *LineItem) ToPayload() Attributes {
	quantity := l.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	return Attributes{
		"id":       l.ID,
		"quantity": quantity,
	}
}

// LineItemsPayload returns the wire form of items, or nil when empty.
func LineItemsPayload(items []*LineItem) []Attributes {
	if len(items) == 0 {
		return nil
	}

	payload := make([]Attributes, 0, len(items))
	for _, item := range items {
		payload = append(payload, item.ToPayload())
	}

	return payload
}
