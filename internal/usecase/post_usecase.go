package usecase

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrMissingImage is returned when a create request does not carry
	// both required image uploads.
	ErrMissingImage = errors.New("both images are required")

	ErrPostNotFound = errors.New("post not found")
)

// Uploader is the contract of the external upload adapter: it durably
// stores a file stream and returns its retrieval URL. The stored object
// key doubles as the filename. File contents are never inspected here.
type Uploader interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
}

type CreatePostInput struct {
	Title       string
	Author      string
	Summary     string
	Content     string
	Footer      string
	Image       *multipart.FileHeader
	SecondImage *multipart.FileHeader
}

type PostUseCase interface {
	Create(category entity.Category, input CreatePostInput) (*entity.Post, error)
	List(category entity.Category) ([]*entity.Post, error)
	Get(category entity.Category, id string) (*entity.Post, error)
	Delete(category entity.Category, id string) error
}

type postUseCase struct {
	postRepo persistent.PostRepository
	uploader Uploader
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, uploader Uploader, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		uploader: uploader,
		logger:   logger,
	}
}

func (uc *postUseCase) Create(category entity.Category, input CreatePostInput) (*entity.Post, error) {
	if input.Image == nil || input.SecondImage == nil {
		return nil, ErrMissingImage
	}

	image, err := uc.uploadImage(category, input.Image)
	if err != nil {
		return nil, err
	}

	secondImage, err := uc.uploadImage(category, input.SecondImage)
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		Category:    category,
		Title:       input.Title,
		Author:      input.Author,
		Summary:     input.Summary,
		Content:     input.Content,
		Footer:      input.Footer,
		Image:       image,
		SecondImage: secondImage,
	}

	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create %s post: %v", category, err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (uc *postUseCase) List(category entity.Category) ([]*entity.Post, error) {
	return uc.postRepo.ListByCategory(category)
}

func (uc *postUseCase) Get(category entity.Category, id string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(category, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post without an ownership check. Unknown ids are a
// no-op, matching the storage layer's delete-if-exists semantics.
func (uc *postUseCase) Delete(category entity.Category, id string) error {
	return uc.postRepo.Delete(category, id)
}

func (uc *postUseCase) uploadImage(category entity.Category, file *multipart.FileHeader) (entity.ImageRef, error) {
	src, err := file.Open()
	if err != nil {
		return entity.ImageRef{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	key := fmt.Sprintf("posts/%s/%s%s", category, uuid.New().String(), filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	url, err := uc.uploader.UploadFile(key, src, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload image: %v", err)
		return entity.ImageRef{}, fmt.Errorf("failed to upload image: %w", err)
	}

	return entity.ImageRef{URL: url, Filename: key}, nil
}
