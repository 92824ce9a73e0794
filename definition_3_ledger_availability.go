package slotledger

// GetAvailability returns the maximal free sub-intervals of the search
// interval in ascending order.
// An empty search interval yields no free intervals.
func (l *Ledger) GetAvailability(searchInterval Interval) ([]Interval, error) {
	if !searchInterval.IsWithinBounds() {
		return nil,
			ErrLedger{
				Caller:   "GetAvailability",
				Interval: searchInterval,
				Kind:     KindOutOfBounds,
			}
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	availableIntervals := make([]Interval, 0)

	hour := searchInterval.From

	for hour < searchInterval.Till {
		if l.booked[slotIndex(hour)] {
			hour++

			continue
		}

		freeStart := hour

		for hour < searchInterval.Till && !l.booked[slotIndex(hour)] {
			hour++
		}

		availableIntervals = append(
			availableIntervals,
			Interval{
				From: freeStart,
				Till: hour,
			},
		)
	}

	return availableIntervals,
		nil
}
