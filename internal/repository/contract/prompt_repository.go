package contract

import (
	"context"

	"content-variation-be/internal/entity"
	"content-variation-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PromptRepository interface {
	Create(ctx context.Context, prompt *entity.SavedPrompt) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedPrompt, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedPrompt, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
