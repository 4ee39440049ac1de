// Package server initializes and runs the authgate server: it selects a
// storage backend, wires the user service and the HTTP endpoint, and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/config"
	"github.com/dmitrijs2005/authgate/internal/server/httpapi"
	"github.com/dmitrijs2005/authgate/internal/server/shared/db"
	"github.com/dmitrijs2005/authgate/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
}

func NewApp(c *config.Config) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, err
	}

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	var rm db.RepositoryManager
	var err error

	if c.DatabaseDSN == "" {
		logger.Warn(context.Background(), "no database DSN configured, accounts are kept in memory")
		rm = db.NewInMemoryRepositoryManager()
	} else {
		rm, err = db.NewPostgresRepositoryManager(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	if len(c.SecretKey) < config.MinSecretKeyLength {
		logger.Warn(context.Background(), "signing secret is shorter than recommended",
			"min_bytes", config.MinSecretKeyLength)
	}

	us, err := users.NewService(rm.Users(), c)
	if err != nil {
		return nil, err
	}

	return &App{config: c, logger: logger, userService: us}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService)

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

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
