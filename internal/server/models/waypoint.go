package models

import "time"

// Waypoint is an ordered checkpoint in the learning progression.
// Rows are immutable once published; OrderIndex is unique and defines
// the only valid progression sequence.
type Waypoint struct {
	ID         int64
	OrderIndex int64
	Title      string
	// ContentKey is the object-storage key of the opaque waypoint content.
	ContentKey string
	CreatedAt  time.Time
}
