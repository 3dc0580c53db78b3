// Package server wires the application together: configuration, logging,
// the repository manager and the gRPC transport, plus graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/miniblog/internal/logging"
	"github.com/dmitrijs2005/miniblog/internal/server/config"
	"github.com/dmitrijs2005/miniblog/internal/server/db"
	"github.com/dmitrijs2005/miniblog/internal/server/images"
	"github.com/dmitrijs2005/miniblog/internal/server/password"
	"github.com/dmitrijs2005/miniblog/internal/server/posts"
	"github.com/dmitrijs2005/miniblog/internal/server/users"

	gs "github.com/dmitrijs2005/miniblog/internal/server/grpc"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	userService  *users.Service
	postService  *posts.Service
	imageService *images.Service
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	rm, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(rm.Users(), password.NewHasher(), c)
	ps := posts.NewService(rm.Posts(), c)
	is := images.NewService(rm.Images(), c)

	return &App{config: c, logger: logger, userService: us, postService: ps, imageService: is}, nil
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

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.postService, app.imageService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
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
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

}
