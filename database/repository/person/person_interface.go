package personRepo

import (
	"errors"

	"slotify/models"
)

// ErrNotFound is returned when a person id does not resolve.
var ErrNotFound = errors.New("person not found")

// PersonRepository defines data access methods for the person directory.
type PersonRepository interface {
	// Exists reports whether a person id resolves in the directory.
	Exists(personID string) (bool, error)
	// GetByID retrieves a person by its unique ID.
	GetByID(personID string) (*models.Person, error)
	// GetAll retrieves every person record.
	GetAll() ([]models.Person, error)
	// Create persists a new person record.
	Create(person *models.Person) error
	// Update replaces the name/email fields of an existing person.
	Update(person *models.Person) error
	// Delete removes a person record by id.
	Delete(personID string) error
}
