// Package session persists the cached Waygate session (token pair and
// subject) in a local sqlite database.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akarpovs/waygate/internal/client/session/migrations"
	"github.com/pressly/goose/v3"
)

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	// Set the database dialect
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (or creates) the sqlite session database and applies
// the embedded migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}
