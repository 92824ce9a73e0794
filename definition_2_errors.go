package slotledger

import (
	"errors"
	"fmt"
)

type ErrorKind uint8

const (
	KindNone ErrorKind = iota
	KindOutOfBounds
	KindNotBooked
	KindOwnershipViolation
)

func (kind ErrorKind) String() string {
	switch kind {
	case KindOutOfBounds:
		return "out of bounds"
	case KindNotBooked:
		return "not booked"
	case KindOwnershipViolation:
		return "ownership violation"
	}

	return "none"
}

// ErrLedger is returned by Book and Cancel.
// Hour and Owner are set only for NotBooked and OwnershipViolation.
type ErrLedger struct {
	Caller string
	Owner  string

	Interval Interval
	Hour     int
	Kind     ErrorKind
}

func (e ErrLedger) Error() string {
	prefix := ternary(
		len(e.Caller) == 0,

		"slot ledger",
		e.Caller,
	)

	switch e.Kind {
	case KindOutOfBounds:
		return fmt.Sprintf(
			"%s: interval %s outside of bookable hours [%d-%d)",

			prefix,
			e.Interval,
			HourOpen,
			HourClose,
		)

	case KindNotBooked:
		return fmt.Sprintf(
			"%s: hour %d of interval %s is not booked",

			prefix,
			e.Hour,
			e.Interval,
		)

	case KindOwnershipViolation:
		return fmt.Sprintf(
			"%s: hour %d of interval %s is booked by another user",

			prefix,
			e.Hour,
			e.Interval,
		)
	}

	return prefix + ": " + e.Kind.String()
}

// Is matches on kind only, so errors.Is(err, ErrNotBooked) holds
// whatever the hour or interval.
func (e ErrLedger) Is(target error) bool {
	t, ok := target.(ErrLedger)

	return ok && t.Kind == e.Kind
}

var (
	ErrOutOfBounds        = ErrLedger{Kind: KindOutOfBounds}
	ErrNotBooked          = ErrLedger{Kind: KindNotBooked}
	ErrOwnershipViolation = ErrLedger{Kind: KindOwnershipViolation}
)

// KindOf returns KindNone for nil and for errors not raised by the ledger.
func KindOf(err error) ErrorKind {
	var errLedger ErrLedger

	if errors.As(err, &errLedger) {
		return errLedger.Kind
	}

	return KindNone
}
