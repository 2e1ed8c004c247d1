package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(category entity.Category, id string) (*entity.Post, error)
	ListByCategory(category entity.Category) ([]*entity.Post, error)
	Delete(category entity.Category, id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}

	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(category entity.Category, id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ? AND category = ?", id, string(category)).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) ListByCategory(category entity.Category) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Where("category = ?", string(category)).Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

// Delete removes a post if it exists. Deleting an unknown id is not an
// error, which keeps the operation idempotent.
func (r *postRepository) Delete(category entity.Category, id string) error {
	return r.db.Where("id = ? AND category = ?", id, string(category)).Delete(&model.PostModel{}).Error
}
