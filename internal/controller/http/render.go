package http

import (
	"inkwell/internal/entity"

	"github.com/gin-gonic/gin"
)

// TemplateData carries the per-request context the session middleware
// resolves for every rendered page.
type TemplateData struct {
	Title       string
	User        *entity.User
	Flash       string
	CurrentTime string
}

type PostListPageData struct {
	TemplateData
	Category entity.Category
	Posts    []*entity.Post
}

type PostPageData struct {
	TemplateData
	Category entity.Category
	Post     *entity.Post
}

type ErrorPageData struct {
	TemplateData
	Status  int
	Message string
}

func currentUser(c *gin.Context) *entity.User {
	if v, ok := c.Get("user"); ok {
		if user, ok := v.(*entity.User); ok {
			return user
		}
	}
	return nil
}

func sessionToken(c *gin.Context) string {
	return c.GetString("session_token")
}

func baseTemplateData(c *gin.Context, title string) TemplateData {
	return TemplateData{
		Title:       title,
		User:        currentUser(c),
		Flash:       c.GetString("flash"),
		CurrentTime: c.GetString("request_time"),
	}
}

func renderErrorPage(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", ErrorPageData{
		TemplateData: baseTemplateData(c, "Error"),
		Status:       status,
		Message:      message,
	})
}
