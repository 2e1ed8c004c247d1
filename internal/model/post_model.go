package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImageRefModel struct {
	URL      string `gorm:"type:varchar(500)"`
	Filename string `gorm:"type:varchar(500)"`
}

type PostModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	Category    string         `gorm:"type:varchar(20);not null;index" json:"category"`
	Title       string         `json:"title"`
	Author      string         `json:"author"`
	Summary     string         `json:"summary"`
	Content     string         `json:"content"`
	Footer      string         `json:"footer"`
	Image       ImageRefModel  `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	SecondImage ImageRefModel  `gorm:"embedded;embeddedPrefix:second_image_" json:"second_image"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
