// Package rest exposes the development API over HTTP with gin.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/sitecms/internal/logging"
	"github.com/dmitrijs2005/sitecms/internal/server/services"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Services are the dependencies of the handlers. Uploads is set when
// uploads are kept in memory and must be served back by this server.
type Services struct {
	Users      *services.UserService
	Articles   *services.ArticleService
	Categories *services.CategoryService
	Media      *services.MediaService
	Inbox      *services.InboxService
	Uploads    *services.MemoryMediaStore
}

type HTTPServer struct {
	address string
	svc     Services
	logger  logging.Logger
	engine  *gin.Engine
}

func NewHTTPServer(address string, l logging.Logger, svc Services) *HTTPServer {
	s := &HTTPServer{
		address: address,
		svc:     svc,
		logger:  l.With("module", "http_server"),
	}
	s.engine = s.routes()
	return s
}

// Handler returns the router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

func (s *HTTPServer) routes() *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = services.MaxUploadSize + 1<<20
	r.Use(s.tracing, s.logging, gin.CustomRecovery(s.recovered))

	if s.svc.Uploads != nil {
		r.GET("/uploads/*key", s.serveUpload)
	}

	api := r.Group("/api")
	api.POST("/auth/login", s.login)

	api.GET("/articles", s.listArticles)
	api.GET("/articles/featured", s.featuredArticles)
	api.GET("/articles/recent", s.recentArticles)
	api.GET("/articles/:slug", s.articleBySlug)
	api.GET("/categories", s.listCategories)

	api.POST("/contact", s.contact)
	api.POST("/newsletter/subscribe", s.subscribe)

	admin := api.Group("/admin", s.bearerAuth)
	{
		admin.GET("/articles", s.adminArticles)
		admin.GET("/articles/stats", s.stats)
		admin.POST("/articles", s.createArticle)
		admin.PUT("/articles/:id", s.updateArticle)
		admin.DELETE("/articles/:id", s.deleteArticle)
		admin.PATCH("/articles/:id/publish", s.publishArticle)
		admin.PATCH("/articles/:id/unpublish", s.unpublishArticle)

		admin.GET("/categories", s.listCategories)
		admin.POST("/categories", s.createCategory)
		admin.DELETE("/categories/:id", s.deleteCategory)

		admin.POST("/upload", s.upload)
		admin.PUT("/credentials", s.updateCredentials)
	}

	r.NoRoute(func(c *gin.Context) {
		fail(c, http.StatusNotFound, "Route not found")
	})
	return r
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
