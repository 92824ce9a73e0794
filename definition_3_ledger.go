package slotledger

import (
	"context"
	"sync"

	goerrors "github.com/TudorHulban/go-errors"
)

// Ledger tracks which user holds each bookable hour of a single room.
// Any string, including the empty one, is a valid user.
type Ledger struct {
	owners [slotsPerDay]string
	booked [slotsPerDay]bool

	mu sync.RWMutex
}

func NewLedger() *Ledger {
	return &Ledger{}
}

type ParamsBooking struct {
	User string

	Interval
}

func (params *ParamsBooking) IsValid(caller string) error {
	if params == nil {
		return goerrors.ErrValidation{
			Caller: caller,
			Issue: goerrors.ErrNilInput{
				InputName: "ParamsBooking",
			},
		}
	}

	if !params.IsWithinBounds() {
		return ErrLedger{
			Caller:   caller,
			Interval: params.Interval,
			Kind:     KindOutOfBounds,
		}
	}

	return nil
}

// Book reserves every hour of the interval for the user, or nothing.
// It returns false without error when any hour is already taken.
// An empty interval books nothing and returns true.
func (l *Ledger) Book(_ context.Context, params *ParamsBooking) (bool, error) {
	if errValidation := params.IsValid("Book"); errValidation != nil {
		return false,
			errValidation
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for hour := params.From; hour < params.Till; hour++ {
		if l.booked[slotIndex(hour)] {
			return false,
				nil
		}
	}

	for hour := params.From; hour < params.Till; hour++ {
		l.owners[slotIndex(hour)] = params.User
		l.booked[slotIndex(hour)] = true
	}

	return true,
		nil
}

// Cancel releases every hour of the interval. All hours must be booked
// by the user, otherwise nothing is released and the first offending
// hour, in ascending order, determines the error.
func (l *Ledger) Cancel(_ context.Context, params *ParamsBooking) error {
	if errValidation := params.IsValid("Cancel"); errValidation != nil {
		return errValidation
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for hour := params.From; hour < params.Till; hour++ {
		if !l.booked[slotIndex(hour)] {
			return ErrLedger{
				Caller:   "Cancel",
				Interval: params.Interval,
				Hour:     hour,
				Kind:     KindNotBooked,
			}
		}

		if owner := l.owners[slotIndex(hour)]; owner != params.User {
			return ErrLedger{
				Caller:   "Cancel",
				Owner:    owner,
				Interval: params.Interval,
				Hour:     hour,
				Kind:     KindOwnershipViolation,
			}
		}
	}

	for hour := params.From; hour < params.Till; hour++ {
		l.owners[slotIndex(hour)] = ""
		l.booked[slotIndex(hour)] = false
	}

	return nil
}

// GetBookedHours returns a fresh ascending slice, never nil.
func (l *Ledger) GetBookedHours() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]int, 0, slotsPerDay)

	for ix, isBooked := range l.booked {
		if isBooked {
			result = append(result, HourOpen+ix)
		}
	}

	return result
}
