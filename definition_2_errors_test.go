package slotledger

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrLedger(t *testing.T) {
	t.Run(
		"1. matches sentinel by kind",
		func(t *testing.T) {
			err := ErrLedger{
				Caller:   "Cancel",
				Interval: Interval{From: 9, Till: 12},
				Hour:     10,
				Kind:     KindNotBooked,
			}

			require.ErrorIs(t, err, ErrNotBooked)
			require.NotErrorIs(t, err, ErrOutOfBounds)
			require.NotErrorIs(t, err, ErrOwnershipViolation)
		},
	)

	t.Run(
		"2. kind survives wrapping",
		func(t *testing.T) {
			wrapped := fmt.Errorf(
				"handler: %w",
				ErrLedger{Kind: KindOwnershipViolation},
			)

			require.ErrorIs(t, wrapped, ErrOwnershipViolation)
			require.Equal(t, KindOwnershipViolation, KindOf(wrapped))
		},
	)

	t.Run(
		"3. foreign errors have no kind",
		func(t *testing.T) {
			require.Equal(t, KindNone, KindOf(nil))
			require.Equal(t, KindNone, KindOf(errors.New("x")))
		},
	)

	t.Run(
		"4. messages",
		func(t *testing.T) {
			require.Equal(t,
				"Book: interval [4-7) outside of bookable hours [8-20)",
				ErrLedger{
					Caller:   "Book",
					Interval: Interval{From: 4, Till: 7},
					Kind:     KindOutOfBounds,
				}.Error(),
			)

			require.Equal(t,
				"Cancel: hour 12 of interval [10-14) is booked by another user",
				ErrLedger{
					Caller:   "Cancel",
					Owner:    "u",
					Interval: Interval{From: 10, Till: 14},
					Hour:     12,
					Kind:     KindOwnershipViolation,
				}.Error(),
			)

			require.Contains(t,
				ErrNotBooked.Error(),
				"slot ledger",
			)
		},
	)
}
