package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UsageRecord is one recorded workflow action, written by the usage consumer
// and aggregated for the profile endpoint.
type UsageRecord struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Action    string
	CreatedAt time.Time
}

const (
	UsageActionExtract     = "SLIDES_EXTRACTED"
	UsageActionCompile     = "PROMPT_COMPILED"
	UsageActionSaveProject = "PROJECT_SAVED"
	UsageActionSavePrompt  = "PROMPT_SAVED"
)
