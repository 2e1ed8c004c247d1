package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the static informational pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/home")
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", baseTemplateData(c, "Home"))
}

func (h *PageHandler) Main(c *gin.Context) {
	c.HTML(http.StatusOK, "main.html", baseTemplateData(c, "Main"))
}

func (h *PageHandler) Library(c *gin.Context) {
	c.HTML(http.StatusOK, "library.html", baseTemplateData(c, "Library"))
}

func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", baseTemplateData(c, "About"))
}
