package client

import (
	"time"

	"github.com/google/uuid"

	"github.com/all-dressed/alldressed-go/internal/constants"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// menuIdentifier accepts a menu UUID in its canonical form or a menu date.
func menuIdentifier(menu string) (string, error) {
	if len(menu) == 36 {
		if _, err := uuid.Parse(menu); err == nil {
			return menu, nil
		}
	}

	if _, err := time.Parse(constants.DateLayout, menu); err == nil {
		return menu, nil
	}

	return "", alldressed.ErrInvalidMenuIdentifier
}
