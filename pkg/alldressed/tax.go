package alldressed

// Tax is a tax applied to shipping at a location.
type Tax struct {
	Entity
}

// Rate returns the rate, as a percentage.
func (t *Tax) Rate() float64 {
	return t.Float("rate")
}

// Tag labels orders and products.
type Tag struct {
	Entity
}

// Name returns the display name.
func (t *Tag) Name() string {
	return t.String("name")
}
