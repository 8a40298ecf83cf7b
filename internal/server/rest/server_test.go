package rest

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/sitecms/internal/common"
	"github.com/dmitrijs2005/sitecms/internal/logging"
	"github.com/dmitrijs2005/sitecms/internal/models"
	"github.com/dmitrijs2005/sitecms/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sitecms/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	rm := repomanager.NewMemoryRepositoryManager(services.NewAdmin("admin", "admin123"))
	uploads := services.NewMemoryMediaStore("http://cms.test")
	s := NewHTTPServer(":0", logging.NewNop(), Services{
		Users:      services.NewUserService(rm.Users(), "test-secret", time.Hour),
		Articles:   services.NewArticleService(rm.Articles(), rm.Categories()),
		Categories: services.NewCategoryService(rm.Categories()),
		Media:      services.NewMediaService(uploads),
		Inbox:      services.NewInboxService(rm.Inbox(), logging.NewNop()),
		Uploads:    uploads,
	})
	return s.Handler()
}

type reply struct {
	Status  int             `json:"-"`
	Header  http.Header     `json:"-"`
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func call(t *testing.T, h http.Handler, method, path string, body any, token string) reply {
	t.Helper()
	var rdr *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	} else {
		rdr = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}
	return serve(t, h, req)
}

func serve(t *testing.T, h http.Handler, req *http.Request) reply {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	r := reply{Status: rec.Code, Header: rec.Header()}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r), rec.Body.String())
	}
	return r
}

func login(t *testing.T, h http.Handler) string {
	t.Helper()
	r := call(t, h, http.MethodPost, "/api/auth/login", models.Credentials{Username: "admin", Password: "admin123"}, "")
	require.Equal(t, http.StatusOK, r.Status)
	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(r.Data, &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLogin(t *testing.T) {
	h := newTestServer(t)

	r := call(t, h, http.MethodPost, "/api/auth/login", models.Credentials{Username: "admin", Password: "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, r.Status)
	assert.False(t, r.Success)
	assert.Equal(t, "Invalid credentials", r.Message)

	r = call(t, h, http.MethodPost, "/api/auth/login", models.Credentials{}, "")
	assert.Equal(t, http.StatusBadRequest, r.Status)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	assert.Equal(t, http.StatusBadRequest, serve(t, h, req).Status)

	assert.NotEmpty(t, login(t, h))
}

func TestBearerAuth(t *testing.T) {
	h := newTestServer(t)

	r := call(t, h, http.MethodGet, "/api/admin/articles/stats", nil, "")
	assert.Equal(t, http.StatusUnauthorized, r.Status)
	assert.Equal(t, "Access token required", r.Message)

	r = call(t, h, http.MethodGet, "/api/admin/articles/stats", nil, "forged")
	assert.Equal(t, http.StatusForbidden, r.Status)

	r = call(t, h, http.MethodGet, "/api/admin/articles/stats", nil, login(t, h))
	assert.Equal(t, http.StatusOK, r.Status)
	assert.True(t, r.Success)
	var st models.ArticleStats
	require.NoError(t, json.Unmarshal(r.Data, &st))
	assert.Zero(t, st.Total)
}

func TestArticleLifecycle(t *testing.T) {
	h := newTestServer(t)
	token := login(t, h)

	in := models.ArticleInput{Title: "Go Tips", Excerpt: "short", Content: "<p>body</p>", Category: "technology", Tags: []string{"go"}}
	r := call(t, h, http.MethodPost, "/api/admin/articles", in, token)
	require.Equal(t, http.StatusCreated, r.Status, r.Message)
	var a models.Article
	require.NoError(t, json.Unmarshal(r.Data, &a))
	assert.Equal(t, "go-tips", a.Slug)
	assert.Equal(t, models.StatusDraft, a.Status)

	r = call(t, h, http.MethodGet, "/api/articles/go-tips", nil, "")
	assert.Equal(t, http.StatusNotFound, r.Status)
	assert.Equal(t, "Article not found", r.Message)

	r = call(t, h, http.MethodPatch, "/api/admin/articles/"+a.ID+"/publish", nil, token)
	require.Equal(t, http.StatusOK, r.Status)

	r = call(t, h, http.MethodGet, "/api/articles/go-tips", nil, "")
	require.Equal(t, http.StatusOK, r.Status)

	r = call(t, h, http.MethodGet, "/api/articles?category=technology&search=tips", nil, "")
	var list []models.Article
	require.NoError(t, json.Unmarshal(r.Data, &list))
	assert.Len(t, list, 1)

	for _, path := range []string{"/api/articles/featured", "/api/articles/recent?limit=5"} {
		r = call(t, h, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, r.Status, path)
	}

	in.Title = "Go Tips Updated"
	r = call(t, h, http.MethodPut, "/api/admin/articles/"+a.ID, in, token)
	require.Equal(t, http.StatusOK, r.Status)
	require.NoError(t, json.Unmarshal(r.Data, &a))
	assert.Equal(t, "go-tips-updated", a.Slug)

	r = call(t, h, http.MethodPatch, "/api/admin/articles/"+a.ID+"/unpublish", nil, token)
	require.Equal(t, http.StatusOK, r.Status)

	r = call(t, h, http.MethodGet, "/api/admin/articles?status=draft", nil, token)
	require.NoError(t, json.Unmarshal(r.Data, &list))
	assert.Len(t, list, 1)

	r = call(t, h, http.MethodGet, "/api/admin/articles?status=bogus", nil, token)
	assert.Equal(t, http.StatusBadRequest, r.Status)

	r = call(t, h, http.MethodDelete, "/api/admin/articles/"+a.ID, nil, token)
	assert.Equal(t, http.StatusOK, r.Status)
	assert.Equal(t, "Article deleted", r.Message)

	r = call(t, h, http.MethodDelete, "/api/admin/articles/"+a.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, r.Status)
}

func TestCreateArticle_Invalid(t *testing.T) {
	h := newTestServer(t)
	r := call(t, h, http.MethodPost, "/api/admin/articles", models.ArticleInput{Title: "x"}, login(t, h))
	assert.Equal(t, http.StatusBadRequest, r.Status)
	assert.Contains(t, r.Message, "excerpt is required")
}

func TestCategories(t *testing.T) {
	h := newTestServer(t)
	token := login(t, h)

	r := call(t, h, http.MethodPost, "/api/admin/categories", models.Category{ID: "travel", Name: "Travel"}, token)
	require.Equal(t, http.StatusCreated, r.Status)

	r = call(t, h, http.MethodPost, "/api/admin/categories", models.Category{ID: "travel", Name: "Travel"}, token)
	assert.Equal(t, http.StatusConflict, r.Status)

	r = call(t, h, http.MethodGet, "/api/categories", nil, "")
	var cats []models.Category
	require.NoError(t, json.Unmarshal(r.Data, &cats))
	require.Len(t, cats, 5)

	for _, c := range cats[:4] {
		r = call(t, h, http.MethodDelete, "/api/admin/categories/"+c.ID, nil, token)
		require.Equal(t, http.StatusOK, r.Status)
	}
	r = call(t, h, http.MethodDelete, "/api/admin/categories/travel", nil, token)
	assert.Equal(t, http.StatusBadRequest, r.Status)
	assert.Equal(t, "At least one category must remain", r.Message)

	r = call(t, h, http.MethodDelete, "/api/admin/categories/nope", nil, token)
	assert.Equal(t, http.StatusNotFound, r.Status)
}

func TestUploadAndServe(t *testing.T) {
	h := newTestServer(t)
	token := login(t, h)
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(common.UploadFieldName, "pic.png")
	require.NoError(t, err)
	_, err = fw.Write(png)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	r := serve(t, h, req)
	require.Equal(t, http.StatusOK, r.Status, r.Message)

	var res models.UploadResult
	require.NoError(t, json.Unmarshal(r.Data, &res))
	assert.Equal(t, "pic.png", res.Filename)
	require.True(t, strings.HasPrefix(res.URL, "http://cms.test/uploads/"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, strings.TrimPrefix(res.URL, "http://cms.test"), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())

	r = call(t, h, http.MethodPost, "/api/admin/upload", nil, token)
	assert.Equal(t, http.StatusBadRequest, r.Status)
	assert.Equal(t, "No file uploaded", r.Message)
}

func TestCredentials(t *testing.T) {
	h := newTestServer(t)
	token := login(t, h)

	r := call(t, h, http.MethodPut, "/api/admin/credentials", models.CredentialsUpdate{CurrentPassword: "bad", NewPassword: "secret99"}, token)
	assert.Equal(t, http.StatusBadRequest, r.Status)
	assert.Equal(t, "Current password is incorrect", r.Message)

	r = call(t, h, http.MethodPut, "/api/admin/credentials", models.CredentialsUpdate{CurrentPassword: "admin123", NewPassword: "secret99"}, token)
	require.Equal(t, http.StatusOK, r.Status)

	r = call(t, h, http.MethodPost, "/api/auth/login", models.Credentials{Username: "admin", Password: "secret99"}, "")
	assert.Equal(t, http.StatusOK, r.Status)
}

func TestPublicForms(t *testing.T) {
	h := newTestServer(t)

	r := call(t, h, http.MethodPost, "/api/contact", models.ContactMessage{Name: "Ann", Email: "ann@example.com", Message: "Hi"}, "")
	assert.Equal(t, http.StatusOK, r.Status)
	assert.True(t, r.Success)

	r = call(t, h, http.MethodPost, "/api/contact", models.ContactMessage{Name: "Ann", Email: "bad"}, "")
	assert.Equal(t, http.StatusBadRequest, r.Status)

	r = call(t, h, http.MethodPost, "/api/newsletter/subscribe", models.Subscription{Email: "ann@example.com"}, "")
	assert.Equal(t, http.StatusOK, r.Status)
	r = call(t, h, http.MethodPost, "/api/newsletter/subscribe", models.Subscription{Email: "ann@example.com"}, "")
	assert.Equal(t, http.StatusConflict, r.Status)
}

func TestTracingAndNoRoute(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nothing", nil)
	req.Header.Set(common.RequestIDHeader, "req-1")
	r := serve(t, h, req)
	assert.Equal(t, http.StatusNotFound, r.Status)
	assert.Equal(t, "req-1", r.Header.Get(common.RequestIDHeader))

	r = call(t, h, http.MethodGet, "/api/categories", nil, "")
	assert.NotEmpty(t, r.Header.Get(common.RequestIDHeader))
}
