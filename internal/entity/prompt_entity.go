package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedPrompt is a compiled prompt the user chose to keep, optionally linked
// to the project it was compiled from.
type SavedPrompt struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	ProjectId   *uuid.UUID
	ProjectName string
	PromptText  string
	CreatedAt   time.Time
}
