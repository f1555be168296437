package rotation

import (
	"errors"
	"time"
)

// ErrEmptyList rejects selection over a list with no entries. Callers are
// expected to resolve an empty list through the fallback chain before asking
// for a rotation index.
var ErrEmptyList = errors.New("rotation: cannot select from an empty list")

// DefaultEpoch anchors day ordinals when no epoch is configured. Every
// deployment sharing a catalog must share an epoch or daily picks drift.
var DefaultEpoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Selector derives deterministic list indices from calendar dates. It holds
// no mutable state and is safe for concurrent use.
type Selector struct {
	epoch time.Time
}

// NewSelector builds a selector counting days from epoch. A zero epoch falls
// back to DefaultEpoch.
func NewSelector(epoch time.Time) *Selector {
	if epoch.IsZero() {
		epoch = DefaultEpoch
	}
	return &Selector{epoch: epoch.UTC()}
}

// DayOrdinal returns the number of whole days between the epoch and the
// calendar date of the input. The date is taken in UTC so every caller agrees
// on day boundaries regardless of device timezone. Dates before the epoch
// yield negative ordinals.
func (s *Selector) DayOrdinal(date time.Time) int64 {
	utc := date.UTC()
	day := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return int64(day.Sub(s.epoch) / (24 * time.Hour))
}

// SelectIndex maps a date onto an index in [0, listLength). The mapping is a
// pure function: the same date and length always produce the same index, on
// any caller, in any process. Two lists of equal length rotate in lockstep.
func (s *Selector) SelectIndex(date time.Time, listLength int) (int, error) {
	if listLength <= 0 {
		return 0, ErrEmptyList
	}
	index := int(s.DayOrdinal(date) % int64(listLength))
	if index < 0 {
		index += listLength
	}
	return index, nil
}

// SelectFrom returns the entry SelectIndex picks for the date.
func (s *Selector) SelectFrom(date time.Time, values []string) (string, error) {
	index, err := s.SelectIndex(date, len(values))
	if err != nil {
		return "", err
	}
	return values[index], nil
}
