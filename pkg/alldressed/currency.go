package alldressed

// Currency is a currency accepted by the account.
type Currency struct {
	Entity
}

// Code returns the ISO 4217 code.
func (c *Currency) Code() string {
	return c.String("code")
}

// Symbol returns the display symbol.
func (c *Currency) Symbol() string {
	return c.String("symbol")
}
