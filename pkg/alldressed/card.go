package alldressed

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Stripe test card numbers.
const (
	StripeVisa                   = "4242424242424242"
	StripeDeclined               = "4000000000000002"
	StripeDeclinedAfterAttaching = "4000000000000341"
)

// Card is a payment card as sent when creating a payment method.
type Card struct {
	Number  string
	Month   int
	Year    int
	CVC     string
	Address *Address
}

// NewCard returns a card with spaces stripped from number.
func NewCard(number string, month, year int, cvc string, address *Address) *Card {
	return &Card{
		Number:  strings.ReplaceAll(number, " ", ""),
		Month:   month,
		Year:    year,
		CVC:     cvc,
		Address: address,
	}
}

// LastFourDigits returns the last four digits of the number.
func (c *Card) LastFourDigits() string {
	if len(c.Number) <= 4 {
		return c.Number
	}

	return c.Number[len(c.Number)-4:]
}

// RandomCard returns a card with random details. It is not a valid card
// unless number is one, e.g. one of the Stripe test numbers.
func RandomCard(number string) *Card {
	if number == "" {
		digits := make([]byte, 15+rand.IntN(2))
		for i := range digits {
			digits[i] = byte('0' + rand.IntN(10))
		}

		number = string(digits)
	}

	return NewCard(
		number,
		1+rand.IntN(12),
		time.Now().Year()+1+rand.IntN(10),
		strconv.Itoa(100+rand.IntN(9900)),
		nil,
	)
}

// StripeVisaCard returns a Visa test card that always succeeds.
func StripeVisaCard() *Card {
	return RandomCard(StripeVisa)
}

// StripeDeclinedCard returns a test card that is always declined.
func StripeDeclinedCard() *Card {
	return RandomCard(StripeDeclined)
}

// StripeDeclinedAfterAttachingCard returns a test card that attaches but is
// declined when charged.
func StripeDeclinedAfterAttachingCard() *Card {
	return RandomCard(StripeDeclinedAfterAttaching)
}
