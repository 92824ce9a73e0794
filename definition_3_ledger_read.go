package slotledger

import (
	"fmt"
	"strings"
)

type Booking struct {
	User string `json:"user"`
	Hour int    `json:"hour"`
}

func (l *Ledger) GetOwner(hour int) (string, bool) {
	if !IsBookable(hour) {
		return "", false
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.owners[slotIndex(hour)],
		l.booked[slotIndex(hour)]
}

// GetBookings returns the hour to user entries in ascending hour order.
func (l *Ledger) GetBookings() []Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]Booking, 0, slotsPerDay)

	for ix, isBooked := range l.booked {
		if isBooked {
			result = append(
				result,
				Booking{
					Hour: HourOpen + ix,
					User: l.owners[ix],
				},
			)
		}
	}

	return result
}

// GetSchedule renders consecutive hours of the same user as one interval.
func (l *Ledger) GetSchedule() string {
	bookings := l.GetBookings()

	if len(bookings) == 0 {
		return "Schedule: (empty)"
	}

	var sb strings.Builder
	sb.WriteString("Schedule:\n")

	flush := func(user string, interval Interval) {
		sb.WriteString(
			fmt.Sprintf(
				"- %s → %s\n",

				interval,
				user,
			),
		)
	}

	current := Interval{
		From: bookings[0].Hour,
		Till: bookings[0].Hour + 1,
	}
	currentUser := bookings[0].User

	for _, booking := range bookings[1:] {
		if booking.Hour == current.Till && booking.User == currentUser {
			current.Till++

			continue
		}

		flush(currentUser, current)

		current = Interval{
			From: booking.Hour,
			Till: booking.Hour + 1,
		}
		currentUser = booking.User
	}

	flush(currentUser, current)

	return sb.String()
}
