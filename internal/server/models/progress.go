package models

import "time"

// ProgressRecord is the per-(student, waypoint) cumulative state. A missing
// row means zero progress; rows are created lazily on first update.
type ProgressRecord struct {
	StudentID  string
	WaypointID int64
	Completed  bool
	Score      *float64
	Mistakes   int64
	Attempts   int64
	UpdatedAt  time.Time
}

// ProgressDelta is a partial update. Nil fields leave the stored value
// untouched. Mistakes and Attempts carry caller-supplied cumulative totals,
// not increments.
type ProgressDelta struct {
	Completed *bool
	Score     *float64
	Mistakes  *int64
	Attempts  *int64
}
