package scheduling

import (
	"context"
	"testing"
	"time"

	"slotify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixed clock pins "today" so past-date validation stays deterministic.
// 2026-09-07 is a Monday.
var (
	testNow    = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	testMonday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
)

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func newTestFinder(avail *memAvailabilityRepo, bookings *memBookingRepo) *DefaultSlotFinder {
	return &DefaultSlotFinder{
		Availability: avail,
		Bookings:     bookings,
		Now:          func() time.Time { return testNow },
	}
}

func weekdayOnly(day int, ranges ...models.TimeRange) models.WeeklyAvailability {
	var days [7][]models.TimeRange
	days[day] = ranges
	return mustWeekly(days)
}

func TestFindSlotsIntersectsGroupAvailability(t *testing.T) {
	avail := newMemAvailabilityRepo()
	avail.data["alice"] = weekdayOnly(0, tr(8*60, 16*60)) // Monday 08:00-16:00
	avail.data["bob"] = weekdayOnly(0, tr(9*60, 17*60))   // Monday 09:00-17:00
	finder := newTestFinder(avail, newMemBookingRepo())

	slots, err := finder.FindSlots(context.Background(), []string{"alice", "bob"}, testMonday, 60)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	// Shared free time is 09:00-16:00; back-to-back hour slots.
	assert.Equal(t, at(testMonday, 9, 0), slots[0].Start)
	assert.Equal(t, at(testMonday, 10, 0), slots[0].End)
	assert.Len(t, slots, 7)
	assert.Equal(t, at(testMonday, 15, 0), slots[len(slots)-1].Start)
}

func TestFindSlotsSkipsExistingBooking(t *testing.T) {
	avail := newMemAvailabilityRepo()
	avail.data["alice"] = weekdayOnly(0, tr(8*60, 16*60))
	avail.data["bob"] = weekdayOnly(0, tr(9*60, 17*60))

	bookings := newMemBookingRepo()
	bookings.data["b1"] = models.Booking{
		ID:        "b1",
		PersonIDs: []string{"alice"},
		Start:     at(testMonday, 9, 0),
		End:       at(testMonday, 10, 0),
		Title:     "standup",
	}
	finder := newTestFinder(avail, bookings)

	slots, err := finder.FindSlots(context.Background(), []string{"alice", "bob"}, testMonday, 60)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	// Alice's booking blocks the whole group even though Bob is free.
	assert.Equal(t, at(testMonday, 10, 0), slots[0].Start)
	assert.Equal(t, at(testMonday, 11, 0), slots[0].End)
}

func TestFindSlotsDeletedBookingRestoresInterval(t *testing.T) {
	avail := newMemAvailabilityRepo()
	avail.data["alice"] = weekdayOnly(0, tr(8*60, 16*60))
	avail.data["bob"] = weekdayOnly(0, tr(9*60, 17*60))

	bookings := newMemBookingRepo()
	bookings.data["b1"] = models.Booking{
		ID:        "b1",
		PersonIDs: []string{"alice", "bob"},
		Start:     at(testMonday, 9, 0),
		End:       at(testMonday, 10, 0),
	}
	finder := newTestFinder(avail, bookings)

	before, err := finder.FindSlots(context.Background(), []string{"alice", "bob"}, testMonday, 60)
	require.NoError(t, err)
	assert.Equal(t, at(testMonday, 10, 0), before[0].Start)

	require.NoError(t, bookings.Delete("b1"))

	after, err := finder.FindSlots(context.Background(), []string{"alice", "bob"}, testMonday, 60)
	require.NoError(t, err)
	assert.Equal(t, at(testMonday, 9, 0), after[0].Start)
}

func TestFindSlotsValidation(t *testing.T) {
	finder := newTestFinder(newMemAvailabilityRepo(), newMemBookingRepo())
	ctx := context.Background()

	_, err := finder.FindSlots(ctx, nil, testMonday, 60)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = finder.FindSlots(ctx, []string{"alice"}, testMonday, 0)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = finder.FindSlots(ctx, []string{"alice"}, testMonday, -15)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	yesterday := testNow.AddDate(0, 0, -1)
	_, err = finder.FindSlots(ctx, []string{"alice"}, yesterday, 60)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestFindSlotsUnknownPerson(t *testing.T) {
	finder := newTestFinder(newMemAvailabilityRepo(), newMemBookingRepo())

	_, err := finder.FindSlots(context.Background(), []string{"ghost"}, testMonday, 60)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindSlotsNoHoursThatDayIsEmptyNotError(t *testing.T) {
	avail := newMemAvailabilityRepo()
	avail.data["alice"] = weekdayOnly(0, tr(8*60, 16*60))
	avail.data["bob"] = weekdayOnly(1, tr(8*60, 16*60)) // Tuesdays only
	finder := newTestFinder(avail, newMemBookingRepo())

	slots, err := finder.FindSlots(context.Background(), []string{"alice", "bob"}, testMonday, 60)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFindSlotsDurationLongerThanFreeInterval(t *testing.T) {
	avail := newMemAvailabilityRepo()
	avail.data["alice"] = weekdayOnly(0, tr(9*60, 10*60)) // one free hour
	finder := newTestFinder(avail, newMemBookingRepo())

	slots, err := finder.FindSlots(context.Background(), []string{"alice"}, testMonday, 90)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFindSlotsContainmentProperties(t *testing.T) {
	avail := newMemAvailabilityRepo()
	avail.data["alice"] = weekdayOnly(0, tr(8*60, 12*60), tr(13*60, 18*60))
	avail.data["bob"] = weekdayOnly(0, tr(9*60, 11*60), tr(14*60, 20*60))
	avail.data["carol"] = weekdayOnly(0, tr(0, 1440))

	bookings := newMemBookingRepo()
	bookings.data["b1"] = models.Booking{
		ID: "b1", PersonIDs: []string{"carol"},
		Start: at(testMonday, 14, 30), End: at(testMonday, 15, 0),
	}
	finder := newTestFinder(avail, bookings)

	ids := []string{"alice", "bob", "carol"}
	slots, err := finder.FindSlots(context.Background(), ids, testMonday, 30)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		assert.Equal(t, 30*time.Minute, s.End.Sub(s.Start), "every slot has the requested duration")

		startMin := int(s.Start.Sub(testMonday) / time.Minute)
		endMin := int(s.End.Sub(testMonday) / time.Minute)
		slotRange := tr(startMin, endMin)

		for id := range avail.data {
			contained := false
			for _, r := range avail.data[id].RangesFor(0) {
				if r.Start <= slotRange.Start && slotRange.End <= r.End {
					contained = true
					break
				}
			}
			assert.True(t, contained, "slot %v not inside %s's availability", s, id)
		}
		for _, b := range bookings.data {
			assert.False(t, b.OverlapsWindow(s.Start, s.End), "slot %v overlaps booking %s", s, b.ID)
		}
	}

	// Ordered ascending by start.
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start))
	}
}

func TestFindSlotsClipsOvernightBooking(t *testing.T) {
	avail := newMemAvailabilityRepo()
	avail.data["alice"] = weekdayOnly(0, tr(0, 10*60)) // Monday 00:00-10:00

	bookings := newMemBookingRepo()
	sunday := testMonday.AddDate(0, 0, -1)
	bookings.data["b1"] = models.Booking{
		ID: "b1", PersonIDs: []string{"alice"},
		Start: at(sunday, 22, 0), End: at(testMonday, 8, 0),
	}
	finder := newTestFinder(avail, bookings)

	slots, err := finder.FindSlots(context.Background(), []string{"alice"}, testMonday, 60)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, at(testMonday, 8, 0), slots[0].Start)
}

func TestFindSlotsBusyEndRoundsUpToWholeMinute(t *testing.T) {
	avail := newMemAvailabilityRepo()
	avail.data["alice"] = weekdayOnly(0, tr(9*60, 12*60))

	bookings := newMemBookingRepo()
	bookings.data["b1"] = models.Booking{
		ID: "b1", PersonIDs: []string{"alice"},
		Start: at(testMonday, 9, 0),
		End:   at(testMonday, 10, 0).Add(30 * time.Second),
	}
	finder := newTestFinder(avail, bookings)

	slots, err := finder.FindSlots(context.Background(), []string{"alice"}, testMonday, 60)
	require.NoError(t, err)

	// The booking spills 30s past 10:00, so a 10:00 slot would overlap it.
	require.Len(t, slots, 1)
	assert.Equal(t, at(testMonday, 10, 1), slots[0].Start)
}

func TestFindSlotsFinerStepOverlapsCandidates(t *testing.T) {
	avail := newMemAvailabilityRepo()
	avail.data["alice"] = weekdayOnly(0, tr(9*60, 11*60))

	finder := newTestFinder(avail, newMemBookingRepo())
	finder.StepMinutes = 15

	slots, err := finder.FindSlots(context.Background(), []string{"alice"}, testMonday, 60)
	require.NoError(t, err)
	// 09:00 through 10:00 starts, every 15 minutes.
	require.Len(t, slots, 5)
	assert.Equal(t, at(testMonday, 9, 15), slots[1].Start)
	for _, s := range slots {
		assert.Equal(t, 60*time.Minute, s.End.Sub(s.Start))
	}
}
