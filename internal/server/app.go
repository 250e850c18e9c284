// Package server initializes and runs the Waygate server: it opens the
// database, applies migrations, seeds the bootstrap admin account, and
// starts the gRPC endpoint with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akarpovs/waygate/internal/logging"
	"github.com/akarpovs/waygate/internal/server/config"
	"github.com/akarpovs/waygate/internal/server/repositories/repomanager"
	"github.com/akarpovs/waygate/internal/server/services"

	gs "github.com/akarpovs/waygate/internal/server/grpc"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	userService     *services.UserService
	waypointService *services.WaypointService
	progressService *services.ProgressService
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	us := services.NewUserService(db, rm, c)
	ws := services.NewWaypointService(db, rm, c)
	ps := services.NewProgressService(db, rm)

	return &App{
		config:          c,
		logger:          logger,
		db:              db,
		userService:     us,
		waypointService: ws,
		progressService: ps,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.userService, app.waypointService, app.progressService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	if err := app.userService.EnsureAdmin(ctx, app.config.AdminUsername, []byte(app.config.AdminPassword)); err != nil {
		return fmt.Errorf("admin bootstrap error: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	return nil
}
