package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/sitecms/internal/client/guard"
	"github.com/dmitrijs2005/sitecms/internal/client/services"
	"github.com/dmitrijs2005/sitecms/internal/common"
	"github.com/dmitrijs2005/sitecms/internal/models"
)

func (s *Server) loginInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": "Login required: POST username and password to " + loginPath})
}

// login accepts JSON or form credentials.
func (s *Server) login(c *gin.Context) {
	var creds models.Credentials
	if strings.HasPrefix(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&creds); err != nil {
			fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	} else {
		creds.Username = c.PostForm("username")
		creds.Password = c.PostForm("password")
	}

	resp, err := services.NewAuthService(s.api(c)).Login(c.Request.Context(), creds.Username, creds.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}
	name := resp.Username
	if name == "" {
		name = creds.Username
	}
	ok(c, http.StatusOK, gin.H{"username": name})
}

func (s *Server) logout(c *gin.Context) {
	if err := services.NewAuthService(s.api(c)).Logout(c.Request.Context()); err != nil {
		s.writeError(c, err)
		return
	}
	done(c, "Logged out")
}

func (s *Server) sessionStatus(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"status": guard.StatusFrom(c).String()})
}

// dashboard is the admin landing summary.
func (s *Server) dashboard(c *gin.Context) {
	st, err := services.NewArticleService(s.api(c)).Stats(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"session": guard.StatusFrom(c).String(), "stats": st})
}

func (s *Server) listArticles(c *gin.Context) {
	list, err := services.NewArticleService(s.api(c)).AdminList(c.Request.Context(), models.ArticleStatus(c.Query("status")))
	if err != nil {
		s.writeError(c, err)
		return
	}
	ok(c, http.StatusOK, list)
}

func (s *Server) createArticle(c *gin.Context) {
	var in models.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	a, err := services.NewArticleService(s.api(c)).Create(c.Request.Context(), in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	ok(c, http.StatusCreated, a)
}

func (s *Server) updateArticle(c *gin.Context) {
	var in models.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	a, err := services.NewArticleService(s.api(c)).Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	ok(c, http.StatusOK, a)
}

func (s *Server) publishArticle(c *gin.Context) {
	a, err := services.NewArticleService(s.api(c)).Publish(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	ok(c, http.StatusOK, a)
}

func (s *Server) unpublishArticle(c *gin.Context) {
	a, err := services.NewArticleService(s.api(c)).Unpublish(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	ok(c, http.StatusOK, a)
}

func (s *Server) deleteArticle(c *gin.Context) {
	if err := services.NewArticleService(s.api(c)).Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	done(c, "Article deleted")
}

func (s *Server) listCategories(c *gin.Context) {
	cats, err := services.NewCategoryService(s.api(c)).AdminList(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	ok(c, http.StatusOK, cats)
}

func (s *Server) createCategory(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	svc := services.NewCategoryService(s.api(c))
	known, err := svc.AdminList(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	created, err := svc.Create(c.Request.Context(), cat, known)
	if err != nil {
		s.writeError(c, err)
		return
	}
	ok(c, http.StatusCreated, created)
}

func (s *Server) deleteCategory(c *gin.Context) {
	svc := services.NewCategoryService(s.api(c))
	known, err := svc.AdminList(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	if err := svc.Delete(c.Request.Context(), c.Param("id"), known); err != nil {
		s.writeError(c, err)
		return
	}
	done(c, "Category deleted")
}

func (s *Server) upload(c *gin.Context) {
	fh, err := c.FormFile(common.UploadFieldName)
	if err != nil {
		fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	f, err := fh.Open()
	if err != nil {
		s.writeError(c, err)
		return
	}
	defer f.Close()

	res, err := services.NewMediaService(s.api(c)).UploadImage(c.Request.Context(), fh.Filename, f)
	if err != nil {
		s.writeError(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}

// updateCredentials expects confirmPassword next to the other fields since
// it is never forwarded to the API.
func (s *Server) updateCredentials(c *gin.Context) {
	var body struct {
		models.CredentialsUpdate
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	u := body.CredentialsUpdate
	u.ConfirmPassword = body.ConfirmPassword
	if err := services.NewAuthService(s.api(c)).UpdateCredentials(c.Request.Context(), u); err != nil {
		s.writeError(c, err)
		return
	}
	done(c, "Credentials updated")
}
