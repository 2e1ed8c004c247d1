package entity

import (
	"fmt"
	"time"
)

// Category tags a post with one of the six content sections of the site.
// All categories share the same post shape and route set.
type Category string

const (
	CategoryBlog         Category = "blog"
	CategoryTech         Category = "tech"
	CategoryCricket      Category = "cricket"
	CategoryGeneral      Category = "general"
	CategoryNature       Category = "nature"
	CategoryMotivational Category = "motivational"
)

// Categories lists every category in route-registration order.
var Categories = []Category{
	CategoryBlog,
	CategoryTech,
	CategoryCricket,
	CategoryGeneral,
	CategoryNature,
	CategoryMotivational,
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// ImageRef is what the upload adapter hands back for a stored file.
type ImageRef struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type Post struct {
	ID          string    `json:"id"`
	Category    Category  `json:"category"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	Footer      string    `json:"footer"`
	Image       ImageRef  `json:"image"`
	SecondImage ImageRef  `json:"second_image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
