package dto

import "github.com/google/uuid"

// RecordUsageMessage travels over the in-process bus from the workflow and
// persistence services to the usage consumer.
type RecordUsageMessage struct {
	UserId uuid.UUID `json:"user_id"`
	Action string    `json:"action"`
}
