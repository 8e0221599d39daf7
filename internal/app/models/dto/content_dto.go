package dto

import "github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/models"

// CreateBoxRequest carries the fields of a new box.
type CreateBoxRequest struct {
	CreatorID   string   `json:"creatorId" validate:"required"`
	Title       string   `json:"title" validate:"required,min=2,max=120"`
	Description string   `json:"description,omitempty" validate:"max=500"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	CoverImage  string   `json:"coverImage,omitempty"`
	IsPrivate   bool     `json:"isPrivate"`
	Price       int      `json:"price" validate:"gte=0"`
}

// UpdateBoxRequest carries the owner-mutable metadata of a box. Zero-value
// fields are left unchanged.
type UpdateBoxRequest struct {
	Title       string   `json:"title,omitempty" validate:"omitempty,min=2,max=120"`
	Description string   `json:"description,omitempty" validate:"max=500"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	CoverImage  string   `json:"coverImage,omitempty"`
}

// AddLessonRequest carries a new lesson for an existing box.
type AddLessonRequest struct {
	Title   string            `json:"title" validate:"required,min=2,max=120"`
	Content string            `json:"content" validate:"required"`
	Type    models.LessonType `json:"type,omitempty"`
}
