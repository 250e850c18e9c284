package repomanager

import (
	"context"
	"database/sql"

	"github.com/akarpovs/waygate/internal/dbx"
	"github.com/akarpovs/waygate/internal/server/migrations"
	"github.com/akarpovs/waygate/internal/server/repositories/progress"
	"github.com/akarpovs/waygate/internal/server/repositories/refreshtokens"
	"github.com/akarpovs/waygate/internal/server/repositories/users"
	"github.com/akarpovs/waygate/internal/server/repositories/waypoints"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Waypoints(db dbx.DBTX) waypoints.Repository {
	return waypoints.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Progress(db dbx.DBTX) progress.Repository {
	return progress.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
