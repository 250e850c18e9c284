// Package users provides a PostgreSQL-backed repository for user accounts.
// It is the profile store: the role column read here is the single source
// of truth for authorization decisions.
package users

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

// Create inserts a new account and returns it with the generated id.
// A username collision maps to common.ErrAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, password_hash, salt, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.PasswordHash, user.Salt, user.Role.String()).Scan(&user.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// GetByUsername returns the account for the given username or common.ErrNotFound.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, salt, role FROM users
		WHERE username = $1
	`

	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

// GetByID returns the account for the given id or common.ErrNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, salt, role FROM users
		WHERE id = $1
	`

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var role string
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Salt, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	user.Role = common.ParseRole(role)
	return user, nil
}
