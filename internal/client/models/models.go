// Package models defines the client-side view of Waygate domain objects.
// These mirror the wire API, not the server storage schema.
package models

import "github.com/akarpovs/waygate/internal/common"

// Waypoint is a single unit of game content. ContentURL is a short-lived
// presigned download link minted by the server; it is empty in listings.
type Waypoint struct {
	ID         int64
	OrderIndex int64
	Title      string
	ContentURL string
}

// Profile is the server's answer to "who am I": the subject id and the
// role the account currently holds.
type Profile struct {
	ID   string
	Role common.Role
}

// Delta is a partial progress update. Nil fields are left untouched by
// the merge on the server side.
type Delta struct {
	Completed *bool
	Score     *float64
	Mistakes  *int64
	Attempts  *int64
}

// ProgressRecord is the merged progress state for one (student, waypoint)
// pair. Score is nil until a score has ever been reported.
type ProgressRecord struct {
	StudentID  string
	WaypointID int64
	Completed  bool
	Score      *float64
	Mistakes   int64
	Attempts   int64
}

// Account is one row of an admin bulk-provisioning request.
type Account struct {
	Username string
	Password string
	Role     string
}
