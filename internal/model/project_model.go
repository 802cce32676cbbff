package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Project struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Images         datatypes.JSON
	Slides         datatypes.JSON
	Analysis       datatypes.JSON
	Brand          string `gorm:"type:varchar(255)"`
	PainPoint      datatypes.JSON
	Tone           datatypes.JSON
	VariationCount int       `gorm:"not null;default:3"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}
