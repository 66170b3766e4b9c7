package scheduling

import (
	"context"
	"errors"
	"time"

	availabilityRepo "slotify/database/repository/availability"
	bookingRepo "slotify/database/repository/booking"
	"slotify/models"
	"slotify/utils"

	"go.uber.org/zap"
)

// DefaultSlotFinder computes bookable slots from declared weekly
// availability and the live booking set. It never mutates anything.
type DefaultSlotFinder struct {
	Availability availabilityRepo.AvailabilityRepository
	Bookings     bookingRepo.BookingRepository
	// StepMinutes is the enumeration step between candidate slot starts.
	// Zero or negative means "step by the requested duration", producing
	// back-to-back non-overlapping candidates.
	StepMinutes int
	// Now is a seam for tests; nil means time.Now.
	Now func() time.Time
}

func (f *DefaultSlotFinder) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// FindSlots implements SlotFinder.
func (f *DefaultSlotFinder) FindSlots(ctx context.Context, personIDs []string, date time.Time, durationMinutes int) ([]models.Slot, error) {
	logger := utils.GetLogger()

	personIDs = dedupe(personIDs)
	if len(personIDs) == 0 {
		return nil, invalidRequestf("at least one person ID is required")
	}
	if durationMinutes <= 0 {
		return nil, invalidRequestf("durationMinutes must be positive, got %d", durationMinutes)
	}
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	today := f.now()
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, date.Location())
	if dayStart.Before(todayStart) {
		return nil, invalidRequestf("date %s is in the past", dayStart.Format("2006-01-02"))
	}

	// Fold each person's weekday ranges into the group intersection.
	// A person with no hours that day empties the intersection.
	weekday := models.WeekdayIndex(dayStart)
	var intersection []models.TimeRange
	for i, personID := range personIDs {
		wa, err := f.Availability.Get(personID)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrNotFound) {
				return nil, notFoundf("person %s not found", personID)
			}
			return nil, storeUnavailable(err)
		}
		ranges := wa.RangesFor(weekday)
		if i == 0 {
			intersection = NormalizeRanges(ranges)
		} else {
			intersection = IntersectRanges(intersection, ranges)
		}
		if len(intersection) == 0 {
			return []models.Slot{}, nil
		}
	}

	// A booking blocks the whole group if it involves any requested person.
	bookings, err := f.Bookings.ListForPeople(personIDs, dayStart)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	busy := make([]models.TimeRange, 0, len(bookings))
	for _, b := range bookings {
		if r, ok := clipToDay(b, dayStart); ok {
			busy = append(busy, r)
		}
	}

	free := SubtractRanges(intersection, NormalizeRanges(busy))

	step := f.StepMinutes
	if step <= 0 {
		step = durationMinutes
	}

	slots := []models.Slot{}
	for _, r := range free {
		for start := r.Start; start+durationMinutes <= r.End; start += step {
			slots = append(slots, models.Slot{
				Start: dayStart.Add(time.Duration(start) * time.Minute),
				End:   dayStart.Add(time.Duration(start+durationMinutes) * time.Minute),
			})
		}
	}

	logger.Debug("computed slots",
		zap.Strings("personIDs", personIDs),
		zap.String("date", dayStart.Format("2006-01-02")),
		zap.Int("durationMinutes", durationMinutes),
		zap.Int("count", len(slots)))
	return slots, nil
}

// clipToDay projects a booking onto the day's minute axis, clamping bookings
// that spill over midnight to the day's bounds.
func clipToDay(b models.Booking, dayStart time.Time) (models.TimeRange, bool) {
	dayEnd := dayStart.AddDate(0, 0, 1)
	if !b.OverlapsWindow(dayStart, dayEnd) {
		return models.TimeRange{}, false
	}
	start := 0
	if b.Start.After(dayStart) {
		start = int(b.Start.Sub(dayStart) / time.Minute)
	}
	end := models.MinutesPerDay
	if b.End.Before(dayEnd) {
		// Round the busy end up so a booking ending mid-minute still blocks
		// the minute it spills into.
		d := b.End.Sub(dayStart)
		end = int(d / time.Minute)
		if d%time.Minute != 0 {
			end++
		}
	}
	if end <= start {
		return models.TimeRange{}, false
	}
	return models.TimeRange{Start: start, End: end}, true
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
