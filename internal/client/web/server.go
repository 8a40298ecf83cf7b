// Package web is the admin backend-for-frontend. The session token lives in
// a signed cookie session and protected routes are gated per request.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/sitecms/internal/client/client"
	"github.com/dmitrijs2005/sitecms/internal/client/config"
	"github.com/dmitrijs2005/sitecms/internal/client/guard"
	"github.com/dmitrijs2005/sitecms/internal/client/session"
	"github.com/dmitrijs2005/sitecms/internal/client/tokenstore"
	"github.com/dmitrijs2005/sitecms/internal/logging"
)

const (
	sessionName     = "sitecms_session"
	sessionMaxAge   = 7 * 24 * 60 * 60
	loginPath       = "/login"
	apiKey          = "api"
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	addr          string
	base          *client.Client
	allowDegraded bool
	log           logging.Logger
	engine        *gin.Engine
}

// NewServer builds the router. Extra client options are applied to the API
// client, e.g. client.WithHTTPClient in tests.
func NewServer(cfg *config.Config, log logging.Logger, opts ...client.Option) *Server {
	opts = append([]client.Option{
		client.WithLogger(log.With("component", "api")),
		client.WithTimeout(cfg.RequestTimeout),
	}, opts...)

	s := &Server{
		addr:          cfg.WebAddr,
		base:          client.New(cfg.APIBaseURL, tokenstore.NewMemoryStore(), opts...),
		allowDegraded: cfg.AllowDegraded,
		log:           log.With("module", "web"),
	}
	if cfg.UsesDefaultSessionSecret() {
		s.log.Warn(context.Background(), "session cookies are signed with the built-in secret, set "+config.EnvSessionSecret)
	}
	s.engine = s.routes(cfg)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET(loginPath, s.loginInfo)
	r.POST(loginPath, s.login)
	r.POST("/logout", s.logout)

	authorized := r.Group("/")
	authorized.Use(guard.Middleware(s.checker, loginPath))
	{
		authorized.GET("/admin", s.dashboard)

		api := authorized.Group("/api")
		{
			api.GET("/session", s.sessionStatus)

			api.GET("/admin/articles", s.listArticles)
			api.POST("/admin/articles", s.createArticle)
			api.PUT("/admin/articles/:id", s.updateArticle)
			api.PATCH("/admin/articles/:id/publish", s.publishArticle)
			api.PATCH("/admin/articles/:id/unpublish", s.unpublishArticle)
			api.DELETE("/admin/articles/:id", s.deleteArticle)

			api.GET("/admin/categories", s.listCategories)
			api.POST("/admin/categories", s.createCategory)
			api.DELETE("/admin/categories/:id", s.deleteCategory)

			api.POST("/admin/upload", s.upload)
			api.PUT("/admin/credentials", s.updateCredentials)
		}
	}
	return r
}

// api returns the client bound to the session of this request.
func (s *Server) api(c *gin.Context) *client.Client {
	if v, ok := c.Get(apiKey); ok {
		return v.(*client.Client)
	}
	api := s.base.WithTokenStore(tokenstore.NewSessionStore(sessions.Default(c)))
	c.Set(apiKey, api)
	return api
}

func (s *Server) checker(c *gin.Context) guard.Checker {
	api := s.api(c)
	return session.NewGate(api.Store(), api,
		session.WithAllowDegraded(s.allowDegraded),
		session.WithLogger(s.log),
	)
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.log.Info(ctx, "Stopping web server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error(ctx, "shutdown", "error", err)
		}
	}()

	s.log.Info(ctx, "Starting web server", "address", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
