package scheduling

import (
	"context"
	"time"

	"slotify/models"
)

// SlotFinder computes the bookable slots for a group of people on a date.
type SlotFinder interface {
	// FindSlots returns every candidate slot of exactly durationMinutes in
	// which all requested people are simultaneously free, ordered ascending
	// by start time. Read-only; safe under any amount of concurrency.
	FindSlots(ctx context.Context, personIDs []string, date time.Time, durationMinutes int) ([]models.Slot, error)
}

// BookingGuard validates and commits bookings, closing the race between
// slot discovery and commitment.
type BookingGuard interface {
	// CreateBooking re-validates against the live booking set inside a
	// single atomic step and persists the booking, or reports ErrConflict.
	CreateBooking(ctx context.Context, personIDs []string, start, end time.Time, title, description string) (*models.Booking, error)
	// DeleteBooking removes a committed booking; ErrNotFound on a missing id.
	DeleteBooking(ctx context.Context, bookingID string) error
	// ListBookings returns bookings whose participant set intersects the
	// filter (all bookings when the filter is empty).
	ListBookings(ctx context.Context, personIDs []string) ([]models.Booking, error)
}
