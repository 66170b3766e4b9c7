package scheduling

import (
	"context"
	"errors"
	"sort"
	"time"

	bookingRepo "slotify/database/repository/booking"
	personRepo "slotify/database/repository/person"
	"slotify/models"
	"slotify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	bookingLockPrefix = "booklock:"
	lockRetryInterval = 25 * time.Millisecond
	lockWait          = 2 * time.Second
)

// DefaultBookingGuard owns the one critical section in the system: the
// check-then-write sequence of a booking commit. Commits touching a shared
// participant are serialized by per-person locks taken in sorted order, and
// the store re-validates overlap atomically at insert time.
type DefaultBookingGuard struct {
	Persons  personRepo.PersonRepository
	Bookings bookingRepo.BookingRepository
	Locks    Locker
	// LockTTL bounds how long a crashed commit can hold a participant lock.
	LockTTL time.Duration
}

// CreateBooking implements BookingGuard.
func (g *DefaultBookingGuard) CreateBooking(ctx context.Context, personIDs []string, start, end time.Time, title, description string) (*models.Booking, error) {
	logger := utils.GetLogger()

	personIDs = dedupe(personIDs)
	if len(personIDs) == 0 {
		return nil, invalidRequestf("at least one person ID is required")
	}
	if !end.After(start) {
		return nil, invalidRequestf("end time must be after start time")
	}

	for _, personID := range personIDs {
		ok, err := g.Persons.Exists(personID)
		if err != nil {
			return nil, storeUnavailable(err)
		}
		if !ok {
			return nil, notFoundf("person %s not found", personID)
		}
	}

	// Sorted acquisition keeps concurrent commits over overlapping
	// participant sets deadlock-free.
	sorted := make([]string, len(personIDs))
	copy(sorted, personIDs)
	sort.Strings(sorted)

	release, err := g.acquireLocks(ctx, sorted)
	if err != nil {
		return nil, err
	}
	defer release()

	booking := &models.Booking{
		ID:          uuid.NewString(),
		PersonIDs:   personIDs,
		Start:       start,
		End:         end,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := g.Bookings.InsertIfNoConflict(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrConflict) {
			logger.Info("booking commit lost to an overlapping booking",
				zap.Strings("personIDs", personIDs),
				zap.Time("start", start), zap.Time("end", end))
			return nil, ErrConflict
		}
		return nil, storeUnavailable(err)
	}

	logger.Info("booking committed",
		zap.String("bookingID", booking.ID),
		zap.Strings("personIDs", personIDs),
		zap.Time("start", start), zap.Time("end", end))
	return booking, nil
}

// acquireLocks takes one lock per participant, retrying briefly on
// contention. The returned release drops every acquired lock.
func (g *DefaultBookingGuard) acquireLocks(ctx context.Context, sortedIDs []string) (func(), error) {
	type held struct {
		key   string
		value string
	}
	var acquired []held

	release := func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			if err := g.Locks.Unlock(ctx, acquired[i].key, acquired[i].value); err != nil {
				utils.GetLogger().Warn("failed to release booking lock",
					zap.String("key", acquired[i].key), zap.Error(err))
			}
		}
	}

	deadline := time.Now().Add(lockWait)
	for _, personID := range sortedIDs {
		key := bookingLockPrefix + personID
		for {
			ok, value, err := g.Locks.TryLock(ctx, key, g.LockTTL)
			if err != nil {
				release()
				return nil, storeUnavailable(err)
			}
			if ok {
				acquired = append(acquired, held{key: key, value: value})
				break
			}
			if time.Now().After(deadline) {
				// Another commit holds the participant; treat it like losing
				// the race so the caller re-runs discovery.
				release()
				return nil, ErrConflict
			}
			select {
			case <-ctx.Done():
				release()
				return nil, storeUnavailable(ctx.Err())
			case <-time.After(lockRetryInterval):
			}
		}
	}
	return release, nil
}

// DeleteBooking implements BookingGuard. Deletion is not idempotent: a
// missing id reports ErrNotFound.
func (g *DefaultBookingGuard) DeleteBooking(ctx context.Context, bookingID string) error {
	if bookingID == "" {
		return invalidRequestf("booking ID is required")
	}
	if err := g.Bookings.Delete(bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return notFoundf("booking %s not found", bookingID)
		}
		return storeUnavailable(err)
	}
	utils.GetLogger().Info("booking deleted", zap.String("bookingID", bookingID))
	return nil
}

// ListBookings implements BookingGuard.
func (g *DefaultBookingGuard) ListBookings(ctx context.Context, personIDs []string) ([]models.Booking, error) {
	bookings, err := g.Bookings.ListByPeople(dedupe(personIDs))
	if err != nil {
		return nil, storeUnavailable(err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}
