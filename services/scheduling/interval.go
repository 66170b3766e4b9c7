package scheduling

import (
	"sort"

	"slotify/models"
)

// Interval algebra over sets of in-day minute ranges. All functions treat
// ranges as half-open [Start, End), never mutate their inputs, and run in
// O(n log n) with an iterative sweep.

// NormalizeRanges sorts ranges by start, merges any pair where the next
// start is at or before the previous end, and drops zero-length ranges.
// Idempotent: normalizing a normalized set is a no-op.
func NormalizeRanges(ranges []models.TimeRange) []models.TimeRange {
	filtered := make([]models.TimeRange, 0, len(ranges))
	for _, r := range ranges {
		if r.End > r.Start {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Start < filtered[j].Start })

	merged := []models.TimeRange{filtered[0]}
	for _, r := range filtered[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// IntersectRanges produces every positive-length overlap between the two
// sets. Commutative and associative, so folding pairwise across any number
// of people is order-independent.
func IntersectRanges(a, b []models.TimeRange) []models.TimeRange {
	a = NormalizeRanges(a)
	b = NormalizeRanges(b)

	var out []models.TimeRange
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := a[i].Start
		if b[j].Start > start {
			start = b[j].Start
		}
		end := a[i].End
		if b[j].End < end {
			end = b[j].End
		}
		if start < end {
			out = append(out, models.TimeRange{Start: start, End: end})
		}
		// Advance whichever range finishes first.
		if a[i].End < b[j].End {
			i++
		} else {
			j++
		}
	}
	return out
}

// SubtractRanges removes every overlapping portion of busy from base,
// splitting base ranges as needed. Subtracting nothing normalizes base;
// subtracting base from itself yields nothing.
func SubtractRanges(base, busy []models.TimeRange) []models.TimeRange {
	base = NormalizeRanges(base)
	busy = NormalizeRanges(busy)

	var out []models.TimeRange
	j := 0
	for _, r := range base {
		cursor := r.Start
		// Skip busy ranges that ended before this base range. Both sets are
		// sorted, so j never moves backwards across base ranges.
		for j < len(busy) && busy[j].End <= r.Start {
			j++
		}
		for k := j; k < len(busy) && busy[k].Start < r.End; k++ {
			if busy[k].Start > cursor {
				out = append(out, models.TimeRange{Start: cursor, End: busy[k].Start})
			}
			if busy[k].End > cursor {
				cursor = busy[k].End
			}
		}
		if cursor < r.End {
			out = append(out, models.TimeRange{Start: cursor, End: r.End})
		}
	}
	return out
}
