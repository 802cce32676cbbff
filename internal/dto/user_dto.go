package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	Id        uuid.UUID        `json:"id"`
	Email     string           `json:"email"`
	FullName  string           `json:"full_name"`
	Usage     map[string]int64 `json:"usage"`
	CreatedAt time.Time        `json:"created_at"`
}
