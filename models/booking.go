package models

import "time"

// Booking represents a committed booking record. Bookings are immutable once
// committed; correction is delete-then-recreate.
type Booking struct {
	ID          string    `bson:"id" json:"id"`                                   // Unique booking identifier (UUID)
	PersonIDs   []string  `bson:"personIds" json:"personIds"`                     // Non-empty set of participants
	Start       time.Time `bson:"start" json:"startTime"`                         // Absolute start instant (inclusive)
	End         time.Time `bson:"end" json:"endTime"`                             // Absolute end instant (exclusive)
	Title       string    `bson:"title" json:"title"`                             // Short label
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`                     // Timestamp when booking was committed
}

// Involves reports whether any of the given people participate in the booking.
func (b Booking) Involves(personIDs []string) bool {
	for _, id := range personIDs {
		for _, pid := range b.PersonIDs {
			if id == pid {
				return true
			}
		}
	}
	return false
}

// OverlapsWindow reports whether the booking intersects [start, end).
func (b Booking) OverlapsWindow(start, end time.Time) bool {
	return b.Start.Before(end) && start.Before(b.End)
}
