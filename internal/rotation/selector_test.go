package rotation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-contentkit/internal/rotation"
)

func TestSelectIndexIsDeterministic(t *testing.T) {
	selector := rotation.NewSelector(time.Time{})
	date := time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC)

	first, err := selector.SelectIndex(date, 7)
	if err != nil {
		t.Fatalf("SelectIndex returned error: %v", err)
	}
	for i := 0; i < 1000; i++ {
		got, err := selector.SelectIndex(date, 7)
		if err != nil {
			t.Fatalf("SelectIndex returned error: %v", err)
		}
		if got != first {
			t.Fatalf("iteration %d: expected stable index %d, got %d", i, first, got)
		}
	}
}

func TestSelectIndexIgnoresTimeOfDayAndZone(t *testing.T) {
	selector := rotation.NewSelector(time.Time{})

	morning := time.Date(2024, time.March, 14, 0, 1, 0, 0, time.UTC)
	night := time.Date(2024, time.March, 14, 23, 59, 59, 0, time.UTC)

	a, _ := selector.SelectIndex(morning, 11)
	b, _ := selector.SelectIndex(night, 11)
	if a != b {
		t.Fatalf("expected same index for same UTC date, got %d and %d", a, b)
	}

	lima := time.FixedZone("lima", -5*3600)
	// 2024-03-14 20:00 in Lima is already 2024-03-15 in UTC.
	evening := time.Date(2024, time.March, 14, 20, 0, 0, 0, lima)
	c, _ := selector.SelectIndex(evening.UTC(), 11)
	next, _ := selector.SelectIndex(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), 11)
	if c != next {
		t.Fatalf("expected UTC day boundary to govern, got %d and %d", c, next)
	}
}

func TestSelectIndexVariesAcrossDays(t *testing.T) {
	selector := rotation.NewSelector(time.Time{})
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	seen := map[int]bool{}
	for day := 0; day < 30; day++ {
		index, err := selector.SelectIndex(start.AddDate(0, 0, day), 7)
		if err != nil {
			t.Fatalf("SelectIndex returned error: %v", err)
		}
		seen[index] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected at least two distinct indices over 30 days, got %d", len(seen))
	}
}

func TestSelectIndexRotatesListsInLockstep(t *testing.T) {
	selector := rotation.NewSelector(time.Time{})
	date := time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)

	english := []string{"a", "b", "c", "d", "e"}
	spanish := []string{"f", "g", "h", "i", "j"}

	en, err := selector.SelectIndex(date, len(english))
	if err != nil {
		t.Fatalf("SelectIndex returned error: %v", err)
	}
	es, err := selector.SelectIndex(date, len(spanish))
	if err != nil {
		t.Fatalf("SelectIndex returned error: %v", err)
	}
	if en != es {
		t.Fatalf("expected equal-length lists to stay synchronized, got %d and %d", en, es)
	}
}

func TestSelectIndexIsContinuousAcrossYearBoundary(t *testing.T) {
	selector := rotation.NewSelector(time.Time{})

	dec31 := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	jan1 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	if got := selector.DayOrdinal(jan1) - selector.DayOrdinal(dec31); got != 1 {
		t.Fatalf("expected consecutive ordinals across year boundary, got gap %d", got)
	}
}

func TestSelectIndexHandlesDatesBeforeEpoch(t *testing.T) {
	selector := rotation.NewSelector(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC))
	date := time.Date(2019, time.December, 25, 0, 0, 0, 0, time.UTC)

	index, err := selector.SelectIndex(date, 7)
	if err != nil {
		t.Fatalf("SelectIndex returned error: %v", err)
	}
	if index < 0 || index >= 7 {
		t.Fatalf("expected index in [0,7), got %d", index)
	}
}

func TestSelectIndexRejectsEmptyList(t *testing.T) {
	selector := rotation.NewSelector(time.Time{})

	if _, err := selector.SelectIndex(time.Now(), 0); !errors.Is(err, rotation.ErrEmptyList) {
		t.Fatalf("expected ErrEmptyList, got %v", err)
	}
	if _, err := selector.SelectFrom(time.Now(), nil); !errors.Is(err, rotation.ErrEmptyList) {
		t.Fatalf("expected ErrEmptyList from SelectFrom, got %v", err)
	}
}

func TestSelectFromReturnsEntryAtIndex(t *testing.T) {
	selector := rotation.NewSelector(time.Time{})
	date := time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)
	values := []string{"alpha", "beta", "gamma"}

	index, err := selector.SelectIndex(date, len(values))
	if err != nil {
		t.Fatalf("SelectIndex returned error: %v", err)
	}
	picked, err := selector.SelectFrom(date, values)
	if err != nil {
		t.Fatalf("SelectFrom returned error: %v", err)
	}
	if picked != values[index] {
		t.Fatalf("expected %q, got %q", values[index], picked)
	}
}
