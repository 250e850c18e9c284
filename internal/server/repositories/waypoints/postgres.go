// Package waypoints provides a PostgreSQL-backed repository for waypoint
// reference data. Waypoints are read-mostly: created by admins, never
// updated afterwards.
package waypoints

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

// GetByID returns the waypoint or common.ErrNotFound. A missing waypoint is
// an expected condition (stale links), not a failure.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Waypoint, error) {
	query := `
		SELECT id, order_index, title, content_key FROM waypoints
		WHERE id = $1
	`

	w := &models.Waypoint{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.OrderIndex, &w.Title, &w.ContentKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return w, nil
}

// List returns all waypoints in progression order.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Waypoint, error) {
	query := `
		SELECT id, order_index, title, content_key FROM waypoints
		ORDER BY order_index
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Waypoint
	for rows.Next() {
		w := &models.Waypoint{}
		if err := rows.Scan(&w.ID, &w.OrderIndex, &w.Title, &w.ContentKey); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Create inserts a new waypoint and returns it with the generated id.
// An order_index collision maps to common.ErrAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, w *models.Waypoint) (*models.Waypoint, error) {
	query := `
		INSERT INTO waypoints (order_index, title, content_key)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, w.OrderIndex, w.Title, w.ContentKey).Scan(&w.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return w, nil
}
