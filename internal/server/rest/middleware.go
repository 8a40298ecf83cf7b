package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/sitecms/internal/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDKey = "requestID"
	subjectKey   = "subject"
)

// tracing takes X-Request-ID from the request or makes one up, and echoes it.
func (s *HTTPServer) tracing(c *gin.Context) {
	id := c.GetHeader(common.RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(common.RequestIDHeader, id)
	c.Next()
}

// logging writes one line per request. 5xx are errors, 4xx warnings.
func (s *HTTPServer) logging(c *gin.Context) {
	start := time.Now()
	c.Next()

	ctx := c.Request.Context()
	args := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
		"request_id", c.GetString(requestIDKey),
	}
	switch status := c.Writer.Status(); {
	case status >= http.StatusInternalServerError:
		s.logger.Error(ctx, "request", args...)
	case status >= http.StatusBadRequest:
		s.logger.Warn(ctx, "request", args...)
	default:
		s.logger.Info(ctx, "request", args...)
	}
}

func (s *HTTPServer) recovered(c *gin.Context, p any) {
	s.logger.Error(c.Request.Context(), "panic", "value", p, "request_id", c.GetString(requestIDKey))
	fail(c, http.StatusInternalServerError, "Internal server error")
}

// bearerAuth rejects requests without a token with 401 and requests with a
// bad or expired one with 403.
func (s *HTTPServer) bearerAuth(c *gin.Context) {
	header := c.GetHeader(common.AuthorizationHeader)
	token, ok := strings.CutPrefix(header, common.BearerPrefix)
	if !ok || token == "" {
		fail(c, http.StatusUnauthorized, "Access token required")
		return
	}

	subject, err := s.svc.Users.Authenticate(token)
	if err != nil {
		fail(c, http.StatusForbidden, "Invalid or expired token")
		return
	}

	c.Set(subjectKey, subject)
	c.Next()
}
