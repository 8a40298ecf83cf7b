package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/sitecms/internal/models"
	"github.com/dmitrijs2005/sitecms/internal/shared"
	"github.com/gin-gonic/gin"
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

// writeError maps service errors onto status codes. notFound is the message
// used for shared.ErrorNotFound.
func (s *HTTPServer) writeError(c *gin.Context, err error, notFound string) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		fail(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, shared.ErrorValidation):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrorNotFound):
		fail(c, http.StatusNotFound, notFound)
	case errors.Is(err, shared.ErrorAlreadyExists):
		fail(c, http.StatusConflict, "Already exists")
	case errors.Is(err, shared.ErrorLastCategory):
		fail(c, http.StatusBadRequest, "At least one category must remain")
	case errors.Is(err, shared.ErrorInvalidLoginPassword):
		fail(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, shared.ErrorWrongPassword):
		fail(c, http.StatusBadRequest, "Current password is incorrect")
	case errors.Is(err, shared.ErrorFileTooLarge):
		fail(c, http.StatusRequestEntityTooLarge, "File too large")
	case errors.Is(err, shared.ErrorNotAnImage):
		fail(c, http.StatusBadRequest, "Only image files are allowed")
	default:
		s.logger.Error(c.Request.Context(), err.Error(), "request_id", c.GetString(requestIDKey))
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
