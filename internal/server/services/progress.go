package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akarpovs/waygate/internal/common"
	"github.com/akarpovs/waygate/internal/server/models"
	"github.com/akarpovs/waygate/internal/server/repositories/repomanager"
)

// ProgressService applies progress deltas and serves progress reads.
// Merging happens in a single upsert statement, so concurrent updates for
// the same (student, waypoint) pair cannot partially interleave.
type ProgressService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProgressService(db *sql.DB, m repomanager.RepositoryManager) *ProgressService {
	return &ProgressService{db: db, repomanager: m}
}

// validateDelta rejects deltas before they reach the store. Scores must fall
// in [0, 100]; counters never go negative.
func validateDelta(delta models.ProgressDelta) error {
	if delta.Score != nil && (*delta.Score < 0 || *delta.Score > 100) {
		return common.ErrInvalidScore
	}
	if delta.Mistakes != nil && *delta.Mistakes < 0 {
		return fmt.Errorf("%w: mistakes must not be negative", common.ErrValidation)
	}
	if delta.Attempts != nil && *delta.Attempts < 0 {
		return fmt.Errorf("%w: attempts must not be negative", common.ErrValidation)
	}
	return nil
}

// Update merges delta into the student's record for the waypoint and returns
// the merged state. Absent delta fields leave the stored values untouched:
// completion never reverts, a present score replaces the stored one, and the
// counters only move forward. An unknown waypoint yields ErrNotFound; a store
// failure yields ErrPersistenceUnavailable and no fields are applied.
func (s *ProgressService) Update(ctx context.Context, studentID string, waypointID int64, delta models.ProgressDelta) (*models.ProgressRecord, error) {
	if err := validateDelta(delta); err != nil {
		return nil, err
	}

	waypointRepo := s.repomanager.Waypoints(s.db)
	if _, err := waypointRepo.GetByID(ctx, waypointID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrPersistenceUnavailable, err)
	}

	repo := s.repomanager.Progress(s.db)
	rec, err := repo.Merge(ctx, studentID, waypointID, delta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistenceUnavailable, err)
	}
	return rec, nil
}

// Get returns the student's record for the waypoint. A student who has not
// touched the waypoint yet reads as an empty record, not an error.
func (s *ProgressService) Get(ctx context.Context, studentID string, waypointID int64) (*models.ProgressRecord, error) {
	repo := s.repomanager.Progress(s.db)

	rec, err := repo.Get(ctx, studentID, waypointID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return &models.ProgressRecord{StudentID: studentID, WaypointID: waypointID}, nil
		}
		return nil, fmt.Errorf("%w: %v", common.ErrPersistenceUnavailable, err)
	}
	return rec, nil
}
