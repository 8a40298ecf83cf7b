package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/sitecms/internal/client/client"
	"github.com/dmitrijs2005/sitecms/internal/client/config"
	"github.com/dmitrijs2005/sitecms/internal/client/guard"
	"github.com/dmitrijs2005/sitecms/internal/client/localdb"
	"github.com/dmitrijs2005/sitecms/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sitecms/internal/client/services"
	"github.com/dmitrijs2005/sitecms/internal/client/session"
	"github.com/dmitrijs2005/sitecms/internal/client/tokenstore"
	"github.com/dmitrijs2005/sitecms/internal/logging"
)

type App struct {
	db    *sql.DB
	store tokenstore.Store
	gate  guard.Checker
	log   logging.Logger

	authService     services.AuthService
	articleService  services.ArticleService
	categoryService services.CategoryService
	mediaService    services.MediaService
	contactService  services.ContactService

	userName string
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the local database at cfg.DatabasePath and wires the
// services against cfg.APIBaseURL.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := localdb.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := tokenstore.NewSQLiteStore(metadata.NewSQLiteRepository(db), log)
	api := client.New(cfg.APIBaseURL, store,
		client.WithLogger(log.With("component", "api")),
		client.WithTimeout(cfg.RequestTimeout),
	)
	gate := session.NewGate(store, api,
		session.WithAllowDegraded(cfg.AllowDegraded),
		session.WithLogger(log),
	)

	a := newApp(api, gate, log)
	a.db = db
	return a, nil
}

func newApp(api *client.Client, gate guard.Checker, log logging.Logger) *App {
	return &App{
		store:           api.Store(),
		gate:            gate,
		log:             log,
		authService:     services.NewAuthService(api),
		articleService:  services.NewArticleService(api),
		categoryService: services.NewCategoryService(api),
		mediaService:    services.NewMediaService(api),
		contactService:  services.NewContactService(api),
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
	}
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Error(ctx, "failed to close database", "error", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.IsLoggedIn(ctx)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
