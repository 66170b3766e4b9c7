package models

import (
	"fmt"
	"sort"
	"time"
)

// MinutesPerDay bounds every in-day minute offset.
const MinutesPerDay = 24 * 60

// TimeRange is a half-open [Start, End) block expressed as minutes from
// midnight (e.g., 480 for 8:00 AM).
type TimeRange struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Overlaps reports whether two half-open ranges share any minute.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// WeeklyAvailability holds a person's recurring free-time ranges, indexed by
// weekday with Monday = 0. Within a day the ranges are sorted ascending and
// never touch or overlap; construct only through NewWeeklyAvailability so
// that invariant holds. Replacement is always wholesale.
type WeeklyAvailability struct {
	Days [7][]TimeRange `bson:"days" json:"days"`
}

// NewWeeklyAvailability validates and canonicalizes per-day ranges.
// Inverted or out-of-bounds ranges and overlapping ranges are rejected;
// touching ranges are merged on write.
func NewWeeklyAvailability(days [7][]TimeRange) (WeeklyAvailability, error) {
	var wa WeeklyAvailability
	for day, ranges := range days {
		if len(ranges) == 0 {
			continue
		}
		sorted := make([]TimeRange, len(ranges))
		copy(sorted, ranges)
		for _, r := range sorted {
			if r.Start < 0 || r.End > MinutesPerDay {
				return WeeklyAvailability{}, fmt.Errorf("day %d: range %d-%d outside 00:00-24:00", day, r.Start, r.End)
			}
			if r.End <= r.Start {
				return WeeklyAvailability{}, fmt.Errorf("day %d: inverted or empty range %d-%d", day, r.Start, r.End)
			}
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

		merged := []TimeRange{sorted[0]}
		for _, r := range sorted[1:] {
			last := &merged[len(merged)-1]
			if r.Start < last.End {
				return WeeklyAvailability{}, fmt.Errorf("day %d: overlapping ranges %d-%d and %d-%d", day, last.Start, last.End, r.Start, r.End)
			}
			if r.Start == last.End {
				last.End = r.End
				continue
			}
			merged = append(merged, r)
		}
		wa.Days[day] = merged
	}
	return wa, nil
}

// RangesFor returns the declared ranges for a weekday (Monday = 0).
// A weekday with no declared hours yields nil.
func (wa WeeklyAvailability) RangesFor(weekday int) []TimeRange {
	if weekday < 0 || weekday > 6 {
		return nil
	}
	return wa.Days[weekday]
}

// WeekdayIndex converts a calendar day to the Monday-based index used by
// WeeklyAvailability.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DefaultAvailability is the schedule new people start with: weekdays
// 08:00-16:00, weekends off.
func DefaultAvailability() WeeklyAvailability {
	var days [7][]TimeRange
	for day := 0; day < 5; day++ {
		days[day] = []TimeRange{{Start: 8 * 60, End: 16 * 60}}
	}
	wa, _ := NewWeeklyAvailability(days)
	return wa
}
