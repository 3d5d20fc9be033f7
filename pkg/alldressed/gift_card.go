package alldressed

// GiftCard is a prepaid card redeemable against orders.
type GiftCard struct {
	Entity

	Currency *Currency `json:"-"`
}

func (g *GiftCard) relations() relations {
	return relations{"currency": &g.Currency}
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *GiftCard) UnmarshalJSON(data []byte) error {
	return g.decode(data, g.relations())
}

// MarshalJSON implements json.Marshaler.
func (g GiftCard) MarshalJSON() ([]byte, error) {
	return g.encode(g.relations())
}

// Code returns the redemption code.
func (g *GiftCard) Code() string {
	return g.String("code")
}

// Balance returns the remaining value, in cents.
func (g *GiftCard) Balance() int {
	return g.Int("balance")
}
