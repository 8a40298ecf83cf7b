package rest

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/sitecms/internal/common"
	"github.com/dmitrijs2005/sitecms/internal/models"
	"github.com/gin-gonic/gin"
)

const (
	articleNotFound  = "Article not found"
	categoryNotFound = "Category not found"
)

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func queryInt(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (s *HTTPServer) login(c *gin.Context) {
	var creds models.Credentials
	if !bindJSON(c, &creds) {
		return
	}
	if creds.Username == "" || creds.Password == "" {
		fail(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	resp, err := s.svc.Users.Login(c.Request.Context(), creds.Username, creds.Password)
	if err != nil {
		s.writeError(c, err, "")
		return
	}
	s.logger.Info(c.Request.Context(), "Logged in", "username", resp.Username)
	ok(c, http.StatusOK, resp)
}

func (s *HTTPServer) updateCredentials(c *gin.Context) {
	var u models.CredentialsUpdate
	if !bindJSON(c, &u) {
		return
	}
	if err := s.svc.Users.UpdateCredentials(c.Request.Context(), u); err != nil {
		s.writeError(c, err, "")
		return
	}
	done(c, "Credentials updated")
}

func (s *HTTPServer) listArticles(c *gin.Context) {
	q := models.ArticleQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}
	list, err := s.svc.Articles.List(c.Request.Context(), q)
	if err != nil {
		s.writeError(c, err, articleNotFound)
		return
	}
	ok(c, http.StatusOK, list)
}

func (s *HTTPServer) featuredArticles(c *gin.Context) {
	list, err := s.svc.Articles.Featured(c.Request.Context())
	if err != nil {
		s.writeError(c, err, articleNotFound)
		return
	}
	ok(c, http.StatusOK, list)
}

func (s *HTTPServer) recentArticles(c *gin.Context) {
	list, err := s.svc.Articles.Recent(c.Request.Context(), queryInt(c, "limit"))
	if err != nil {
		s.writeError(c, err, articleNotFound)
		return
	}
	ok(c, http.StatusOK, list)
}

func (s *HTTPServer) articleBySlug(c *gin.Context) {
	a, err := s.svc.Articles.BySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		s.writeError(c, err, articleNotFound)
		return
	}
	ok(c, http.StatusOK, a)
}

func (s *HTTPServer) adminArticles(c *gin.Context) {
	list, err := s.svc.Articles.AdminList(c.Request.Context(), c.Query("status"))
	if err != nil {
		s.writeError(c, err, articleNotFound)
		return
	}
	ok(c, http.StatusOK, list)
}

func (s *HTTPServer) stats(c *gin.Context) {
	st, err := s.svc.Articles.Stats(c.Request.Context())
	if err != nil {
		s.writeError(c, err, articleNotFound)
		return
	}
	ok(c, http.StatusOK, st)
}

func (s *HTTPServer) createArticle(c *gin.Context) {
	var in models.ArticleInput
	if !bindJSON(c, &in) {
		return
	}
	a, err := s.svc.Articles.Create(c.Request.Context(), in)
	if err != nil {
		s.writeError(c, err, articleNotFound)
		return
	}
	ok(c, http.StatusCreated, a)
}

func (s *HTTPServer) updateArticle(c *gin.Context) {
	var in models.ArticleInput
	if !bindJSON(c, &in) {
		return
	}
	a, err := s.svc.Articles.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		s.writeError(c, err, articleNotFound)
		return
	}
	ok(c, http.StatusOK, a)
}

func (s *HTTPServer) deleteArticle(c *gin.Context) {
	if err := s.svc.Articles.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err, articleNotFound)
		return
	}
	done(c, "Article deleted")
}

func (s *HTTPServer) publishArticle(c *gin.Context) {
	a, err := s.svc.Articles.Publish(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err, articleNotFound)
		return
	}
	ok(c, http.StatusOK, a)
}

func (s *HTTPServer) unpublishArticle(c *gin.Context) {
	a, err := s.svc.Articles.Unpublish(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err, articleNotFound)
		return
	}
	ok(c, http.StatusOK, a)
}

func (s *HTTPServer) listCategories(c *gin.Context) {
	cats, err := s.svc.Categories.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err, categoryNotFound)
		return
	}
	ok(c, http.StatusOK, cats)
}

func (s *HTTPServer) createCategory(c *gin.Context) {
	var cat models.Category
	if !bindJSON(c, &cat) {
		return
	}
	created, err := s.svc.Categories.Create(c.Request.Context(), cat)
	if err != nil {
		s.writeError(c, err, categoryNotFound)
		return
	}
	ok(c, http.StatusCreated, created)
}

func (s *HTTPServer) deleteCategory(c *gin.Context) {
	if err := s.svc.Categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err, categoryNotFound)
		return
	}
	done(c, "Category deleted")
}

func (s *HTTPServer) upload(c *gin.Context) {
	fh, err := c.FormFile(common.UploadFieldName)
	if err != nil {
		fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	f, err := fh.Open()
	if err != nil {
		s.writeError(c, err, "")
		return
	}
	defer f.Close()

	res, err := s.svc.Media.Upload(c.Request.Context(), fh.Filename, f)
	if err != nil {
		s.writeError(c, err, "")
		return
	}
	ok(c, http.StatusOK, res)
}

func (s *HTTPServer) serveUpload(c *gin.Context) {
	f, found := s.svc.Uploads.Get("uploads" + c.Param("key"))
	if !found {
		fail(c, http.StatusNotFound, "File not found")
		return
	}
	c.Data(http.StatusOK, f.ContentType, f.Data)
}

func (s *HTTPServer) contact(c *gin.Context) {
	var m models.ContactMessage
	if !bindJSON(c, &m) {
		return
	}
	if err := s.svc.Inbox.Contact(c.Request.Context(), m); err != nil {
		s.writeError(c, err, "")
		return
	}
	done(c, "Message sent")
}

func (s *HTTPServer) subscribe(c *gin.Context) {
	var sub models.Subscription
	if !bindJSON(c, &sub) {
		return
	}
	if err := s.svc.Inbox.Subscribe(c.Request.Context(), sub); err != nil {
		s.writeError(c, err, "")
		return
	}
	done(c, "Subscribed")
}
