package availabilityRepo

import (
	"errors"

	"slotify/models"
)

// ErrNotFound is returned when the person owning the availability is unknown.
var ErrNotFound = errors.New("person not found")

// AvailabilityRepository defines data access methods for per-person weekly
// availability. Replacement is wholesale; there is no partial-day patching.
type AvailabilityRepository interface {
	// Get retrieves a person's weekly availability.
	Get(personID string) (models.WeeklyAvailability, error)
	// Replace overwrites a person's weekly availability.
	Replace(personID string, wa models.WeeklyAvailability) error
}
