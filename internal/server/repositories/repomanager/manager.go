// Package repomanager wires repository constructors together behind one
// interface so services can obtain repositories bound to either a plain
// connection or a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/akarpovs/waygate/internal/dbx"
	"github.com/akarpovs/waygate/internal/server/repositories/progress"
	"github.com/akarpovs/waygate/internal/server/repositories/refreshtokens"
	"github.com/akarpovs/waygate/internal/server/repositories/users"
	"github.com/akarpovs/waygate/internal/server/repositories/waypoints"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Waypoints(db dbx.DBTX) waypoints.Repository
	Progress(db dbx.DBTX) progress.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
