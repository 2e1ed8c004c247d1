package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:       m.ID,
		Category: entity.Category(m.Category),
		Title:    m.Title,
		Author:   m.Author,
		Summary:  m.Summary,
		Content:  m.Content,
		Footer:   m.Footer,
		Image: entity.ImageRef{
			URL:      m.Image.URL,
			Filename: m.Image.Filename,
		},
		SecondImage: entity.ImageRef{
			URL:      m.SecondImage.URL,
			Filename: m.SecondImage.Filename,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:       e.ID,
		Category: string(e.Category),
		Title:    e.Title,
		Author:   e.Author,
		Summary:  e.Summary,
		Content:  e.Content,
		Footer:   e.Footer,
		Image: model.ImageRefModel{
			URL:      e.Image.URL,
			Filename: e.Image.Filename,
		},
		SecondImage: model.ImageRefModel{
			URL:      e.SecondImage.URL,
			Filename: e.SecondImage.Filename,
		},
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		Password:  e.Password,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
