package contract

import (
	"context"

	"content-variation-be/internal/entity"
	"content-variation-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
}

type UsageRepository interface {
	Create(ctx context.Context, record *entity.UsageRecord) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountByAction(ctx context.Context, specs ...specification.Specification) (map[string]int64, error)
}
