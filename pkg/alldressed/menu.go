package alldressed

import (
	"fmt"
	"time"
)

// Menu is the selection offered for one delivery date.
type Menu struct {
	Entity

	Date         time.Time `json:"-"`
	CutOff       time.Time `json:"-"`
	DeliveryDate time.Time `json:"-"`
}

func (m *Menu) dates() map[string]*time.Time {
	return map[string]*time.Time{
		"date":          &m.Date,
		"cutoff":        &m.CutOff,
		"delivery_date": &m.DeliveryDate,
	}
}

// UnmarshalJSON implements json.Unmarshaler. Dates are parsed into UTC.
func (m *Menu) UnmarshalJSON(data []byte) error {
	if err := m.decode(data, nil); err != nil {
		return err
	}

	for key, field := range m.dates() {
		raw, ok := m.Get(key).(string)
		if !ok || raw == "" {
			continue
		}

		parsed, err := ParseTime(raw)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", key, err)
		}

		*field = parsed
		m.attributes[key] = parsed
	}

	return nil
}

// IsSkipped reports whether the subscription skips this menu.
func (m *Menu) IsSkipped() bool {
	return m.Bool("skipped")
}
