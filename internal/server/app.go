// Package server initializes and runs the development API: in-memory
// repositories, the admin account, upload storage and the HTTP server.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/sitecms/internal/logging"
	"github.com/dmitrijs2005/sitecms/internal/server/config"
	"github.com/dmitrijs2005/sitecms/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sitecms/internal/server/rest"
	"github.com/dmitrijs2005/sitecms/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *rest.HTTPServer
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	for _, name := range c.InsecureDefaults() {
		logger.Warn(ctx, "built-in development secret in use", "setting", name)
	}

	rm := repomanager.NewMemoryRepositoryManager(services.NewAdmin(c.AdminUsername, c.AdminPassword))

	svc := rest.Services{
		Users:      services.NewUserService(rm.Users(), c.SecretKey, c.TokenTTL),
		Articles:   services.NewArticleService(rm.Articles(), rm.Categories()),
		Categories: services.NewCategoryService(rm.Categories()),
		Inbox:      services.NewInboxService(rm.Inbox(), logger),
	}

	if c.UseS3() {
		store, err := services.NewS3MediaStore(ctx, services.S3Config{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
		})
		if err != nil {
			return nil, fmt.Errorf("s3 init error: %w", err)
		}
		svc.Media = services.NewMediaService(store)
	} else {
		store := services.NewMemoryMediaStore(c.PublicURL)
		svc.Media = services.NewMediaService(store)
		svc.Uploads = store
	}

	return &App{
		config: c,
		logger: logger,
		server: rest.NewHTTPServer(c.Addr, logger, svc),
	}, nil
}

// Handler exposes the router without listening.
func (app *App) Handler() http.Handler {
	return app.server.Handler()
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or the process is signalled.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "s3", app.config.UseS3())

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
