// Package progress provides the PostgreSQL-backed progress store. The merge
// procedure is a single upsert statement, so concurrent updates for the same
// (student, waypoint) pair serialize at the row level and every call is
// all-or-nothing.
package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akarpovs/waygate/internal/common"
	"github.com/akarpovs/waygate/internal/dbx"
	"github.com/akarpovs/waygate/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Merge applies a partial update to the (studentID, waypointID) record,
// creating the row on first contact. Merge rules, applied atomically within
// the one statement:
//
//   - completed: one-way transition; OR with the stored flag, so a stale
//     completed=false can never erase a completion.
//   - score: replace when present, keep stored otherwise.
//   - mistakes/attempts: cumulative totals; GREATEST with the stored value
//     guards against out-of-order delivery lowering a newer total.
//
// Returns the merged row as stored.
func (r *PostgresRepository) Merge(ctx context.Context, studentID string, waypointID int64, delta models.ProgressDelta) (*models.ProgressRecord, error) {
	query := `
		INSERT INTO progress (student_id, waypoint_id, completed, score, mistakes, attempts)
		VALUES ($1, $2, COALESCE($3, false), $4, COALESCE($5, 0), COALESCE($6, 0))
		ON CONFLICT (student_id, waypoint_id) DO UPDATE SET
			completed = progress.completed OR COALESCE(EXCLUDED.completed, false),
			score = COALESCE($4, progress.score),
			mistakes = GREATEST(progress.mistakes, COALESCE($5, progress.mistakes)),
			attempts = GREATEST(progress.attempts, COALESCE($6, progress.attempts)),
			updated_at = now()
		RETURNING student_id, waypoint_id, completed, score, mistakes, attempts
	`

	rec := &models.ProgressRecord{}
	err := r.db.QueryRowContext(ctx, query,
		studentID, waypointID, delta.Completed, delta.Score, delta.Mistakes, delta.Attempts).
		Scan(&rec.StudentID, &rec.WaypointID, &rec.Completed, &rec.Score, &rec.Mistakes, &rec.Attempts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

// Get returns the stored record or common.ErrNotFound when the student has
// not touched the waypoint yet.
func (r *PostgresRepository) Get(ctx context.Context, studentID string, waypointID int64) (*models.ProgressRecord, error) {
	query := `
		SELECT student_id, waypoint_id, completed, score, mistakes, attempts FROM progress
		WHERE student_id = $1 AND waypoint_id = $2
	`

	rec := &models.ProgressRecord{}
	err := r.db.QueryRowContext(ctx, query, studentID, waypointID).
		Scan(&rec.StudentID, &rec.WaypointID, &rec.Completed, &rec.Score, &rec.Mistakes, &rec.Attempts)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}
