package http

import (
	"errors"
	"net/http"

	"inkwell/internal/entity"
	"inkwell/internal/usecase"
	"inkwell/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PostHandler serves the create/list/show/delete pages for every content
// category; the category is bound at route registration.
type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

func (h *PostHandler) NewForm(category entity.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "post_form.html", PostPageData{
			TemplateData: baseTemplateData(c, "New "+string(category)+" post"),
			Category:     category,
		})
	}
}

func (h *PostHandler) Create(category entity.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		input := usecase.CreatePostInput{
			Title:   c.PostForm("title"),
			Author:  c.PostForm("author"),
			Summary: c.PostForm("summary"),
			Content: c.PostForm("content"),
			Footer:  c.PostForm("footer"),
		}

		// Both uploads are validated in the usecase; a missing field is
		// reported there, not here.
		if file, err := c.FormFile("image"); err == nil {
			input.Image = file
		}
		if file, err := c.FormFile("image1"); err == nil {
			input.SecondImage = file
		}

		if _, err := h.postUseCase.Create(category, input); err != nil {
			if errors.Is(err, usecase.ErrMissingImage) {
				c.String(http.StatusBadRequest, "Please upload both images.")
				return
			}
			h.logger.Error("Failed to save %s post: %v", category, err)
			c.String(http.StatusInternalServerError, "An error occurred while saving the post.")
			return
		}

		c.Redirect(http.StatusFound, "/"+string(category))
	}
}

func (h *PostHandler) List(category entity.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := h.postUseCase.List(category)
		if err != nil {
			h.logger.Error("Failed to list %s posts: %v", category, err)
			c.String(http.StatusInternalServerError, "An error occurred while loading posts.")
			return
		}

		c.HTML(http.StatusOK, "post_list.html", PostListPageData{
			TemplateData: baseTemplateData(c, string(category)),
			Category:     category,
			Posts:        posts,
		})
	}
}

func (h *PostHandler) Show(category entity.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := h.postUseCase.Get(category, c.Param("id"))
		if errors.Is(err, usecase.ErrPostNotFound) {
			renderErrorPage(c, http.StatusNotFound, "Post not found.")
			return
		}
		if err != nil {
			h.logger.Error("Failed to load %s post: %v", category, err)
			c.String(http.StatusInternalServerError, "An error occurred while loading the post.")
			return
		}

		c.HTML(http.StatusOK, "post_show.html", PostPageData{
			TemplateData: baseTemplateData(c, post.Title),
			Category:     category,
			Post:         post,
		})
	}
}

func (h *PostHandler) Delete(category entity.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.postUseCase.Delete(category, c.Param("id")); err != nil {
			h.logger.Error("Failed to delete %s post: %v", category, err)
			c.String(http.StatusInternalServerError, "An error occurred while deleting the post.")
			return
		}

		c.Redirect(http.StatusFound, "/"+string(category))
	}
}
