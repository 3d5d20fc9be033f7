package alldressed

// Discount is a discount code with its rewards.
type Discount struct {
	Entity

	Values  []*DiscountValue      `json:"-"`
	Items   []*DiscountItem       `json:"-"`
	Choices []*DiscountItemChoice `json:"-"`
}

func (d *Discount) relations() relations {
	return relations{
		"values":  &d.Values,
		"items":   &d.Items,
		"choices": &d.Choices,
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Discount) UnmarshalJSON(data []byte) error {
	return d.decode(data, d.relations())
}

// MarshalJSON implements json.Marshaler.
func (d Discount) MarshalJSON() ([]byte, error) {
	return d.encode(d.relations())
}

// Code returns the code customers enter.
func (d *Discount) Code() string {
	return d.String("code")
}

// DiscountValue is one reward of a discount, applied at a given order.
type DiscountValue struct {
	Entity

	Type     DiscountValueType `json:"-"`
	Currency *Currency         `json:"-"`
}

// NewDiscountValue returns a value ready to be sent with a new discount.
func NewDiscountValue(valueType DiscountValueType, value int, currency *Currency) *DiscountValue {
	return &DiscountValue{
		Entity:   NewEntity(Attributes{"value": value}),
		Type:     valueType,
		Currency: currency,
	}
}

func (v *DiscountValue) relations() relations {
	return relations{
		"type":     &v.Type,
		"currency": &v.Currency,
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *DiscountValue) UnmarshalJSON(data []byte) error {
	return v.decode(data, v.relations())
}

// MarshalJSON implements json.Marshaler.
func (v DiscountValue) MarshalJSON() ([]byte, error) {
	return v.encode(v.relations())
}

// Value returns the amount, in cents or percent depending on the type.
func (v *DiscountValue) Value() int {
	return v.Int("value")
}

// ToPayload returns the wire form sent when creating a discount.
func (v *DiscountValue) ToPayload() Attributes {
	payload := Attributes{
		"type":  string(v.Type),
		"value": v.Value(),
	}

	if v.Has("order") {
		payload["order"] = v.Int("order")
	}

	if v.Currency != nil {
		payload["currency"] = v.Currency.ID()
	}

	return payload
}

// DiscountItem is a free product granted by a discount.
type DiscountItem struct {
	Entity

	Product *Product `json:"-"`
}

func (i *DiscountItem) relations() relations {
	return relations{"product": &i.Product}
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *DiscountItem) UnmarshalJSON(data []byte) error {
	return i.decode(data, i.relations())
}

// MarshalJSON implements json.Marshaler.
func (i DiscountItem) MarshalJSON() ([]byte, error) {
	return i.encode(i.relations())
}

// Quantity returns the number of free products.
func (i *DiscountItem) Quantity() int {
	return i.Int("quantity")
}

// DiscountItemChoice is a free item picked by the customer.
type DiscountItemChoice struct {
	Entity

	Item *DiscountItem `json:"-"`
}

// NewDiscountItemChoice returns a choice of the free item id.
func NewDiscountItemChoice(id string, quantity int) *DiscountItemChoice {
	return &DiscountItemChoice{
		Entity: NewEntity(Attributes{"id": id, "quantity": quantity}),
	}
}

func (c *DiscountItemChoice) relations() relations {
	return relations{"item": &c.Item}
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *DiscountItemChoice) UnmarshalJSON(data []byte) error {
	return c.decode(data, c.relations())
}

// MarshalJSON implements json.Marshaler.
func (c DiscountItemChoice) MarshalJSON() ([]byte, error) {
	return c.encode(c.relations())
}

// ToPayload returns the wire form. The id is the one of the item when set.
func (c *DiscountItemChoice) ToPayload() Attributes {
	id := c.ID()
	if c.Item != nil {
		id = c.Item.ID()
	}

	return Attributes{
		"id":       id,
		"quantity": c.Int("quantity"),
	}
}

// DiscountItemChoicesPayload returns the wire form of choices, or nil when
// empty.
func DiscountItemChoicesPayload(choices []*DiscountItemChoice) []Attributes {
	if len(choices) == 0 {
		return nil
	}

	payload := make([]Attributes, 0, len(choices))
	for _, choice := range choices {
		payload = append(payload, choice.ToPayload())
	}

	return payload
}
