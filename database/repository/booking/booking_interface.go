package bookingRepo

import (
	"context"
	"errors"
	"time"

	"slotify/models"
)

var (
	// ErrNotFound is returned when a booking id does not resolve.
	ErrNotFound = errors.New("booking not found")
	// ErrConflict is returned when a commit loses the race to an
	// overlapping booking for a shared participant.
	ErrConflict = errors.New("booking conflict")
)

// BookingRepository defines data access methods for booking records.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(bookingID string) (*models.Booking, error)
	// ListForPeople retrieves every booking that touches the given calendar
	// day and involves at least one of the given people.
	ListForPeople(personIDs []string, date time.Time) ([]models.Booking, error)
	// ListByPeople retrieves bookings whose participant set intersects the
	// filter; an empty filter returns all bookings.
	ListByPeople(personIDs []string) ([]models.Booking, error)
	// InsertIfNoConflict atomically re-checks for overlapping bookings for
	// any participant and persists the booking only when none exist.
	// Returns ErrConflict when the check fails; no partial write occurs.
	InsertIfNoConflict(ctx context.Context, booking *models.Booking) error
	// Delete removes a booking record, returning ErrNotFound on a missing id.
	Delete(bookingID string) error
}
