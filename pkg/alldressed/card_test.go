package alldressed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

func TestNewCard(t *testing.T) {
	t.Parallel()

	card := alldressed.NewCard("4242 4242 4242 4242", 12, 2030, "123", nil)

	assert.Equal(t, alldressed.StripeVisa, card.Number)
	assert.Equal(t, "4242", card.LastFourDigits())
	assert.Equal(t, "12", (&alldressed.Card{Number: "12"}).LastFourDigits())
}

func TestRandomCard(t *testing.T) {
	t.Parallel()

	for range 20 {
		card := alldressed.RandomCard("")

		assert.Contains(t, []int{15, 16}, len(card.Number))
		assert.GreaterOrEqual(t, card.Month, 1)
		assert.LessOrEqual(t, card.Month, 12)
		assert.Greater(t, card.Year, time.Now().Year())
		assert.NotEmpty(t, card.CVC)
	}

	assert.Equal(t, alldressed.StripeDeclined, alldressed.StripeDeclinedCard().Number)
	assert.Equal(t, alldressed.StripeDeclinedAfterAttaching, alldressed.StripeDeclinedAfterAttachingCard().Number)
	assert.Equal(t, alldressed.StripeVisa, alldressed.StripeVisaCard().Number)
}
