package dto

import (
	"time"

	"github.com/google/uuid"
)

// SavePromptRequest persists prompt text the client holds (the output view
// is editable). When PromptText is empty the session's compiled prompt is
// saved instead.
type SavePromptRequest struct {
	SessionId   string     `json:"session_id" validate:"required"`
	PromptText  string     `json:"prompt_text"`
	ProjectId   *uuid.UUID `json:"project_id"`
	ProjectName string     `json:"project_name"`
}

type SavePromptResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowPromptResponse struct {
	Id          uuid.UUID  `json:"id"`
	ProjectId   *uuid.UUID `json:"project_id"`
	ProjectName string     `json:"project_name"`
	PromptText  string     `json:"prompt_text"`
	CreatedAt   time.Time  `json:"created_at"`
}
