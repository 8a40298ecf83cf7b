package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/sitecms/internal/client/client"
)

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func done(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}

// statusFor maps a client error back onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, client.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, client.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, client.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, client.ErrNetwork):
		return http.StatusServiceUnavailable
	case errors.Is(err, client.ErrServer):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Error(c.Request.Context(), "api call failed", "path", c.Request.URL.Path, "error", err)
	}
	fail(c, status, err.Error())
}
