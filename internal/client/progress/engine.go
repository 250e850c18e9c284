// Package progress implements the client-side progress tracking engine.
// It validates deltas, serializes updates per (student, waypoint) pair,
// and keeps a local completion high-water mark so a reordered update can
// never regress a completion the server has already accepted.
package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/akarpovs/waygate/internal/client/models"
	"github.com/akarpovs/waygate/internal/common"
)

type api interface {
	UpdateProgress(ctx context.Context, waypointID int64, d models.Delta) (*models.ProgressRecord, error)
	GetProgress(ctx context.Context, waypointID int64) (*models.ProgressRecord, error)
}

type Engine struct {
	client api

	mu        sync.Mutex
	locks     map[string]*sync.Mutex
	completed map[string]bool
}

func NewEngine(client api) *Engine {
	return &Engine{
		client:    client,
		locks:     make(map[string]*sync.Mutex),
		completed: make(map[string]bool),
	}
}

func progressKey(studentID string, waypointID int64) string {
	return fmt.Sprintf("%s/%d", studentID, waypointID)
}

// lockFor returns the mutex serializing updates for one key, creating it
// on first use.
func (e *Engine) lockFor(key string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[key]
	if !ok {
		l = &sync.Mutex{}
		e.locks[key] = l
	}
	return l
}

func validateDelta(d models.Delta) error {
	if d.Score != nil && (*d.Score < 0 || *d.Score > 100) {
		return common.ErrInvalidScore
	}
	if d.Mistakes != nil && *d.Mistakes < 0 {
		return fmt.Errorf("%w: mistakes must not be negative", common.ErrValidation)
	}
	if d.Attempts != nil && *d.Attempts < 0 {
		return fmt.Errorf("%w: attempts must not be negative", common.ErrValidation)
	}
	return nil
}

// Update merges a partial delta into the student's record for the
// waypoint. Absent fields are untouched; completion is one-way; the
// counters are cumulative totals guarded against regression server-side.
//
// The engine performs no retries. A store that cannot be reached reads as
// common.ErrPersistenceUnavailable, and the single-upsert server call is
// all-or-nothing, so the caller may safely retry the whole operation.
func (e *Engine) Update(ctx context.Context, studentID string, waypointID int64, d models.Delta) error {
	if err := validateDelta(d); err != nil {
		return err
	}

	key := progressKey(studentID, waypointID)
	l := e.lockFor(key)
	l.Lock()
	defer l.Unlock()

	// A completion we have already seen acknowledged can never be taken
	// back, even if the calls reached us out of order.
	if d.Completed != nil && !*d.Completed && e.isCompleted(key) {
		d.Completed = nil
	}

	rec, err := e.client.UpdateProgress(ctx, waypointID, d)
	if err != nil {
		if errors.Is(err, common.ErrUpstreamUnavailable) {
			return fmt.Errorf("%w: %v", common.ErrPersistenceUnavailable, err)
		}
		return err
	}

	if rec != nil && rec.Completed {
		e.markCompleted(key)
	}
	return nil
}

// Get reads the stored record for the waypoint. A student with no record
// yet receives an empty one from the server.
func (e *Engine) Get(ctx context.Context, waypointID int64) (*models.ProgressRecord, error) {
	rec, err := e.client.GetProgress(ctx, waypointID)
	if err != nil {
		if errors.Is(err, common.ErrUpstreamUnavailable) {
			return nil, fmt.Errorf("%w: %v", common.ErrPersistenceUnavailable, err)
		}
		return nil, err
	}
	if rec != nil && rec.Completed {
		e.markCompleted(progressKey(rec.StudentID, waypointID))
	}
	return rec, nil
}

func (e *Engine) isCompleted(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completed[key]
}

func (e *Engine) markCompleted(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.completed[key] = true
}
