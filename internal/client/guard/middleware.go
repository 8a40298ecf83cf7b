package guard

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/sitecms/internal/client/session"
	"github.com/dmitrijs2005/sitecms/internal/common"
)

// StatusKey holds the session.Status of a granted request in the gin context.
const StatusKey = "sessionStatus"

// Middleware mounts a fresh Guard for every request. Denied API requests
// get a 401 JSON envelope, other denied requests are redirected to
// loginPath. Requests granted without server confirmation carry the
// X-Session-Degraded header.
func Middleware(checker func(*gin.Context) Checker, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		g := New(checker(c))
		state := g.Mount(c.Request.Context(), Views{
			Denied: func() { deny(c, loginPath) },
			Granted: func() {
				st := g.Status()
				if st == session.StatusDegraded {
					c.Header(common.DegradedHeader, "true")
				}
				c.Set(StatusKey, st)
			},
		})
		if state == StateGranted {
			c.Next()
		}
	}
}

func deny(c *gin.Context, loginPath string) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}
	c.Redirect(http.StatusFound, loginPath)
	c.Abort()
}

// StatusFrom returns the status stored by Middleware.
func StatusFrom(c *gin.Context) session.Status {
	if v, ok := c.Get(StatusKey); ok {
		if st, ok := v.(session.Status); ok {
			return st
		}
	}
	return session.StatusUnauthenticated
}
