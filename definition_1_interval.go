package slotledger

import "fmt"

// Interval is the half-open hour range [From, Till).
type Interval struct {
	From int `json:"from"`
	Till int `json:"till"`
}

func (interval Interval) IsWithinBounds() bool {
	return interval.From >= HourOpen && interval.Till <= HourClose
}

// IsEmpty reports From >= Till. Such intervals cover no hours.
func (interval Interval) IsEmpty() bool {
	return interval.From >= interval.Till
}

func (interval Interval) Len() int {
	return ternary(
		interval.IsEmpty(),

		0,
		interval.Till-interval.From,
	)
}

func (interval Interval) Contains(hour int) bool {
	return hour >= interval.From && hour < interval.Till
}

func (interval Interval) String() string {
	return fmt.Sprintf(
		"[%d-%d)",

		interval.From,
		interval.Till,
	)
}
