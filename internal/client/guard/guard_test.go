package guard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sitecms/internal/client/session"
	"github.com/dmitrijs2005/sitecms/internal/common"
)

type fakeChecker struct {
	mu     sync.Mutex
	calls  int
	status session.Status
	err    error
}

func (f *fakeChecker) CheckSession(context.Context) (session.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.status, f.err
}

func recordViews(log *[]string) Views {
	return Views{
		Pending: func() { *log = append(*log, "pending") },
		Denied:  func() { *log = append(*log, "denied") },
		Granted: func() { *log = append(*log, "granted") },
	}
}

func TestMount_Transitions(t *testing.T) {
	tests := []struct {
		name   string
		status session.Status
		err    error
		want   State
		view   string
	}{
		{"authenticated", session.StatusAuthenticated, nil, StateGranted, "granted"},
		{"degraded", session.StatusDegraded, nil, StateGranted, "granted"},
		{"unauthenticated", session.StatusUnauthenticated, nil, StateDenied, "denied"},
		{"gate error", session.StatusUnauthenticated, errors.New("verify session: boom"), StateDenied, "denied"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log []string
			g := New(&fakeChecker{status: tt.status, err: tt.err})
			assert.Equal(t, StatePending, g.State())

			got := g.Mount(context.Background(), recordViews(&log))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"pending", tt.view}, log)
			assert.Equal(t, tt.err, g.Err())
		})
	}
}

func TestMount_IsTerminal(t *testing.T) {
	var log []string
	fc := &fakeChecker{status: session.StatusAuthenticated}
	g := New(fc)

	g.Mount(context.Background(), recordViews(&log))
	fc.status = session.StatusUnauthenticated
	state := g.Mount(context.Background(), recordViews(&log))

	assert.Equal(t, StateGranted, state)
	assert.Equal(t, []string{"pending", "granted"}, log)
	assert.Equal(t, 1, fc.calls)

	// a fresh guard re-runs the check
	assert.Equal(t, StateDenied, New(fc).Mount(context.Background(), Views{}))
	assert.Equal(t, 2, fc.calls)
}

func TestMount_ConcurrentCallsResolveOnce(t *testing.T) {
	fc := &fakeChecker{status: session.StatusAuthenticated}
	g := New(fc)

	var wg sync.WaitGroup
	states := make([]State, 8)
	for i := range states {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			states[i] = g.Mount(context.Background(), Views{})
		}(i)
	}
	wg.Wait()

	for _, s := range states {
		assert.Equal(t, StateGranted, s)
	}
	assert.Equal(t, 1, fc.calls)
}

func newRouter(fc *fakeChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("/", Middleware(func(*gin.Context) Checker { return fc }, "/login"))
	protected.GET("/admin", func(c *gin.Context) {
		c.String(http.StatusOK, StatusFrom(c).String())
	})
	protected.GET("/api/admin/articles", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestMiddleware_DeniedPageRedirects(t *testing.T) {
	r := newRouter(&fakeChecker{status: session.StatusUnauthenticated})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestMiddleware_DeniedAPIGets401(t *testing.T) {
	r := newRouter(&fakeChecker{status: session.StatusUnauthenticated})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/articles", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Unauthorized"}`, w.Body.String())
}

func TestMiddleware_Granted(t *testing.T) {
	r := newRouter(&fakeChecker{status: session.StatusAuthenticated})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "authenticated", w.Body.String())
	assert.Empty(t, w.Header().Get(common.DegradedHeader))
}

func TestMiddleware_DegradedIsTagged(t *testing.T) {
	r := newRouter(&fakeChecker{status: session.StatusDegraded})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "degraded", w.Body.String())
	assert.Equal(t, "true", w.Header().Get(common.DegradedHeader))
}

func TestMiddleware_ChecksEveryRequest(t *testing.T) {
	fc := &fakeChecker{status: session.StatusAuthenticated}
	r := newRouter(fc)

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin", nil))
	}
	assert.Equal(t, 3, fc.calls)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "denied", StateDenied.String())
	assert.Equal(t, "granted", StateGranted.String())
}
