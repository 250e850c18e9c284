package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/akarpovs/waygate/internal/client/client"
	"github.com/akarpovs/waygate/internal/client/config"
	"github.com/akarpovs/waygate/internal/client/guard"
	"github.com/akarpovs/waygate/internal/client/identity"
	"github.com/akarpovs/waygate/internal/client/nav"
	"github.com/akarpovs/waygate/internal/client/progress"
	"github.com/akarpovs/waygate/internal/client/roles"
	"github.com/akarpovs/waygate/internal/client/session"
	"github.com/akarpovs/waygate/internal/client/waypoints"
	"github.com/akarpovs/waygate/internal/filex"
	"github.com/akarpovs/waygate/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config    *config.Config
	db        *sql.DB
	apiClient client.Client
	identity  *identity.Provider
	waypoints *waypoints.Repository
	engine    *progress.Engine
	orch      *nav.Orchestrator

	userName string
	signedIn bool
	Mode     Mode
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	sl := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	logger := logging.NewSlogLogger(sl)

	dataDir, err := filex.EnsureSubdDir("data")
	if err != nil {
		return nil, err
	}

	db, err := session.InitDatabase(ctx, filepath.Join(dataDir, c.DatabaseFileName))
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewWaygateClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(session.NewSQLiteRepository(db))
	provider := identity.NewProvider(apiClient, store, logger)
	if err := provider.Restore(ctx); err != nil {
		logger.Warn(ctx, "could not restore cached session", "error", err)
	}

	g := guard.NewGuard(provider, roles.NewResolver(apiClient))
	repo := waypoints.NewRepository(apiClient)
	engine := progress.NewEngine(apiClient)
	orch := nav.NewOrchestrator(g, repo, engine, logger)

	app := &App{
		config:    c,
		db:        db,
		apiClient: apiClient,
		identity:  provider,
		waypoints: repo,
		engine:    engine,
		orch:      orch,
		reader:    bufio.NewReader(os.Stdin),
	}

	// a cached session keeps the user signed in across restarts
	if sess, err := store.Load(ctx); err == nil && sess != nil {
		app.signedIn = true
		app.userName = sess.Username
	}

	return app, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.apiClient.Close()
		_ = a.db.Close()
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.signedIn
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.apiClient.Ping(ctx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
