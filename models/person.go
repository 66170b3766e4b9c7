package models

// Person represents a directory entry. The scheduling core only ever holds
// person IDs; the record itself is owned by the people store.
type Person struct {
	ID           string             `bson:"id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Availability WeeklyAvailability `bson:"availability" json:"availability"`
}
