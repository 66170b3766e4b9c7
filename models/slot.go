package models

import "time"

// Slot is a candidate bookable window of exactly the requested duration.
// Slots are derived values: never persisted, recomputed on every query.
type Slot struct {
	Start time.Time `json:"startTime"`
	End   time.Time `json:"endTime"`
}
