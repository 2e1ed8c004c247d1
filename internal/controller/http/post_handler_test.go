package http

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/entity"
	"inkwell/internal/usecase"
	"inkwell/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) Create(category entity.Category, input usecase.CreatePostInput) (*entity.Post, error) {
	args := m.Called(category, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) List(category entity.Category) ([]*entity.Post, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) Get(category entity.Category, id string) (*entity.Post, error) {
	args := m.Called(category, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) Delete(category entity.Category, id string) error {
	args := m.Called(category, id)
	return args.Error(0)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../../web/templates/*.html")
	return r
}

// multipartBody builds a multipart form with the given text fields and
// one dummy image per listed file field.
func multipartBody(t *testing.T, fields map[string]string, fileFields []string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		writer.WriteField(name, value)
	}
	for _, name := range fileFields {
		part, err := writer.CreateFormFile(name, name+".jpg")
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		part.Write([]byte("fake image bytes"))
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestCreatePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/blog", handler.Create(entity.CategoryBlog))

	mockUseCase.On("Create", entity.CategoryBlog, mock.MatchedBy(func(input usecase.CreatePostInput) bool {
		return input.Title == "A" && input.Content == "B" && input.Image != nil && input.SecondImage != nil
	})).Return(&entity.Post{ID: "post-123", Title: "A"}, nil)

	body, contentType := multipartBody(t, map[string]string{
		"title":   "A",
		"content": "B",
	}, []string{"image", "image1"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blog", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/blog", w.Header().Get("Location"))
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_MissingUpload(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/blog", handler.Create(entity.CategoryBlog))

	mockUseCase.On("Create", entity.CategoryBlog, mock.MatchedBy(func(input usecase.CreatePostInput) bool {
		return input.SecondImage == nil
	})).Return(nil, usecase.ErrMissingImage)

	// Only one of the two required uploads
	body, contentType := multipartBody(t, map[string]string{"title": "A"}, []string{"image"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blog", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please upload both images.")
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_PersistenceFailure(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tech", handler.Create(entity.CategoryTech))

	mockUseCase.On("Create", entity.CategoryTech, mock.Anything).
		Return(nil, errors.New("connection refused"))

	body, contentType := multipartBody(t, map[string]string{"title": "A"}, []string{"image", "image1"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tech", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListPosts(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/nature", handler.List(entity.CategoryNature))

	mockUseCase.On("List", entity.CategoryNature).Return([]*entity.Post{
		{ID: "post-1", Title: "First walk", Author: "jane"},
		{ID: "post-2", Title: "Second walk", Author: "john"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/nature", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "First walk")
	assert.Contains(t, w.Body.String(), "Second walk")
	mockUseCase.AssertExpectations(t)
}

func TestListPosts_Failure(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/nature", handler.List(entity.CategoryNature))

	mockUseCase.On("List", entity.CategoryNature).Return(nil, errors.New("connection refused"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/nature", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestShowPost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/cricket/:id", handler.Show(entity.CategoryCricket))

	mockUseCase.On("Get", entity.CategoryCricket, "post-123").Return(&entity.Post{
		ID:     "post-123",
		Title:  "Final over",
		Author: "jane",
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cricket/post-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Final over")
	mockUseCase.AssertExpectations(t)
}

func TestShowPost_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/cricket/:id", handler.Show(entity.CategoryCricket))

	mockUseCase.On("Get", entity.CategoryCricket, "missing-id").Return(nil, usecase.ErrPostNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cricket/missing-id", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeletePost(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/general/:id", handler.Delete(entity.CategoryGeneral))

	mockUseCase.On("Delete", entity.CategoryGeneral, "post-123").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/general/post-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/general", w.Header().Get("Location"))
	mockUseCase.AssertExpectations(t)
}

func TestNewForm(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/blog/new", handler.NewForm(entity.CategoryBlog))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blog/new", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/blog"`)
}
