package alldressed

// Zone is a delivery area identified by postcode.
type Zone struct {
	Entity
}

// Name returns the display name.
func (z *Zone) Name() string {
	return z.String("name")
}

// DeliverySchedule is a recurring delivery slot of a zone.
type DeliverySchedule struct {
	Entity
}

// Day returns the weekday of the delivery.
func (s *DeliverySchedule) Day() string {
	return s.String("day")
}

// DeliveryFrequency is a delivery interval offered by a schedule.
type DeliveryFrequency struct {
	Entity
}

// NewDeliveryFrequency returns a frequency of days.
func NewDeliveryFrequency(days int) *DeliveryFrequency {
	return &DeliveryFrequency{Entity: NewEntity(Attributes{"days": days})}
}

// Days returns the number of days between deliveries.
func (f *DeliveryFrequency) Days() int {
	return f.Int("days")
}
