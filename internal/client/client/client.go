package client

import (
	"context"

	"github.com/akarpovs/waygate/internal/client/models"
)

// Client is the full Waygate RPC surface used by the CLI layers.
type Client interface {
	Close() error
	SetTokens(accessToken, refreshToken string)
	Tokens() (string, string)
	OnTokensRefreshed(fn func(accessToken, refreshToken string))
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context) (*models.Profile, error)
	GetWaypoint(ctx context.Context, id int64) (*models.Waypoint, error)
	ListWaypoints(ctx context.Context) ([]*models.Waypoint, error)
	UpdateProgress(ctx context.Context, waypointID int64, d models.Delta) (*models.ProgressRecord, error)
	GetProgress(ctx context.Context, waypointID int64) (*models.ProgressRecord, error)
	CreateAccounts(ctx context.Context, accounts []models.Account) (int64, []string, error)
	CreateWaypoint(ctx context.Context, orderIndex int64, title string, content []byte) (*models.Waypoint, error)
	Ping(ctx context.Context) error
}
