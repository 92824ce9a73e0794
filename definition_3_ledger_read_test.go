package slotledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLedgerReads(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger()

	require.Equal(t, "Schedule: (empty)", ledger.GetSchedule())

	_, errAlice := ledger.Book(ctx, paramsBooking("alice", 9, 11))
	require.NoError(t, errAlice)
	_, errBob := ledger.Book(ctx, paramsBooking("bob", 11, 12))
	require.NoError(t, errBob)
	_, errAliceLater := ledger.Book(ctx, paramsBooking("alice", 15, 17))
	require.NoError(t, errAliceLater)

	t.Run(
		"1. owner",
		func(t *testing.T) {
			owner, isBooked := ledger.GetOwner(11)
			require.True(t, isBooked)
			require.Equal(t, "bob", owner)

			_, isBookedFree := ledger.GetOwner(12)
			require.False(t, isBookedFree)

			_, isBookedOutside := ledger.GetOwner(20)
			require.False(t, isBookedOutside)
		},
	)

	t.Run(
		"2. bookings",
		func(t *testing.T) {
			require.Equal(t,
				[]Booking{
					{Hour: 9, User: "alice"},
					{Hour: 10, User: "alice"},
					{Hour: 11, User: "bob"},
					{Hour: 15, User: "alice"},
					{Hour: 16, User: "alice"},
				},
				ledger.GetBookings(),
			)
		},
	)

	t.Run(
		"3. schedule",
		func(t *testing.T) {
			require.Equal(t,
				"Schedule:\n- [9-11) → alice\n- [11-12) → bob\n- [15-17) → alice\n",
				ledger.GetSchedule(),
			)
		},
	)
}

func TestLedgerGetAvailability(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger()

	_, errBook := ledger.Book(ctx, paramsBooking("alice", 10, 12))
	require.NoError(t, errBook)
	_, errBookMore := ledger.Book(ctx, paramsBooking("bob", 14, 15))
	require.NoError(t, errBookMore)

	tests := []struct {
		name     string
		search   Interval
		expected []Interval
	}{
		{
			name:   "1. whole day",
			search: Interval{From: 8, Till: 20},
			expected: []Interval{
				{From: 8, Till: 10},
				{From: 12, Till: 14},
				{From: 15, Till: 20},
			},
		},
		{
			name:     "2. inside a booking",
			search:   Interval{From: 10, Till: 12},
			expected: []Interval{},
		},
		{
			name:     "3. straddling a booking",
			search:   Interval{From: 11, Till: 15},
			expected: []Interval{{From: 12, Till: 14}},
		},
		{
			name:     "4. empty search",
			search:   Interval{From: 13, Till: 13},
			expected: []Interval{},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				free, errGet := ledger.GetAvailability(tt.search)
				require.NoError(t, errGet)
				require.Equal(t, tt.expected, free)
			},
		)
	}

	t.Run(
		"5. out of bounds",
		func(t *testing.T) {
			free, errGet := ledger.GetAvailability(Interval{From: 6, Till: 10})
			require.ErrorIs(t, errGet, ErrOutOfBounds)
			require.Nil(t, free)
		},
	)
}
