package model

import (
	"time"

	"github.com/google/uuid"
)

type SavedPrompt struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProjectId   *uuid.UUID `gorm:"type:uuid;index"`
	ProjectName string     `gorm:"type:varchar(255);not null"`
	PromptText  string     `gorm:"type:text;not null"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (SavedPrompt) TableName() string {
	return "saved_prompts"
}
