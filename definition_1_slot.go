package slotledger

// Bookable hours are [HourOpen, HourClose).
// HourClose is only valid as an exclusive interval end.
const (
	HourOpen  = 8
	HourClose = 20

	slotsPerDay = HourClose - HourOpen
)

func IsBookable(hour int) bool {
	return hour >= HourOpen && hour < HourClose
}

func slotIndex(hour int) int {
	return hour - HourOpen
}
