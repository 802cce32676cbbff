package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project is a named, identity-scoped snapshot of an in-progress workflow:
// everything needed to resume configuration except the compiled prompt.
type Project struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Name           string
	Images         []string
	Slides         []ConfiguredSlide
	Analysis       *AnalysisResult
	Brand          string
	PainPoint      PainPointConfig
	Tone           ToneConfig
	VariationCount int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
