package dto

import (
	"time"

	"content-variation-be/internal/entity"

	"github.com/google/uuid"
)

type SaveProjectRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Name      string `json:"name"`
}

type SaveProjectResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// UpdateProjectRequest is a partial update: only the fields present in the
// request body are applied.
type UpdateProjectRequest struct {
	Name           *string                 `json:"name" validate:"omitempty,min=1"`
	Brand          *string                 `json:"brand"`
	VariationCount *int                    `json:"variation_count" validate:"omitempty,min=1,max=20"`
	PainPoint      *entity.PainPointConfig `json:"pain_point"`
	Tone           *entity.ToneConfig      `json:"tone"`
}

type ProjectSummaryResponse struct {
	Id         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	SlideCount int        `json:"slide_count"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type ShowProjectResponse struct {
	Id             uuid.UUID                `json:"id"`
	Name           string                   `json:"name"`
	Images         []string                 `json:"images"`
	Slides         []entity.ConfiguredSlide `json:"slides"`
	Analysis       *entity.AnalysisResult   `json:"analysis"`
	Brand          string                   `json:"brand"`
	PainPoint      entity.PainPointConfig   `json:"pain_point"`
	Tone           entity.ToneConfig        `json:"tone"`
	VariationCount int                      `json:"variation_count"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      *time.Time               `json:"updated_at"`
}
