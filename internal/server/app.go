// Package server initializes and runs the directory server: it selects
// the user store backend, wires services and the HTTP router, and
// handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/akimenko/userdesk/internal/logging"
	"github.com/akimenko/userdesk/internal/server/api"
	"github.com/akimenko/userdesk/internal/server/avatar"
	"github.com/akimenko/userdesk/internal/server/config"
	"github.com/akimenko/userdesk/internal/server/repository"
	"github.com/akimenko/userdesk/internal/server/service"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	router *echo.Echo
	closer func() error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewZerologLogger(os.Stdout, c.LogLevel)

	var (
		repo   repository.Repository
		closer func() error
	)

	switch c.Store {
	case config.StorePostgres:
		db, err := repository.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		repo = repository.NewPostgresRepository(db)
		closer = db.Close
	case config.StoreMemory:
		mem, err := repository.NewMemoryRepository()
		if err != nil {
			return nil, err
		}
		repo = mem
	default:
		return nil, fmt.Errorf("unknown store kind %q", c.Store)
	}

	var avatars avatar.Resolver = avatar.StaticResolver{}
	if c.S3.Bucket != "" {
		avatars = avatar.NewS3Resolver(c.S3, logger)
	}

	secret := []byte(c.JWTSecret)
	authService := service.NewAuthService(repo, secret, c.TokenTTL, logger)
	usersService := service.NewUsersService(repo, avatars, logger)

	handler := api.NewHandler(authService, usersService, logger)
	router := api.NewRouter(handler, secret)

	return &App{config: c, logger: logger, router: router, closer: closer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until the context is cancelled or a termination signal
// arrives, then shuts the listener down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	addr := ":" + app.config.Port
	app.logger.Info(ctx, "starting server", "addr", addr, "store", app.config.Store)

	errCh := make(chan error, 1)
	go func() {
		if err := app.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.router.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if app.closer != nil {
		return app.closer()
	}
	return nil
}
