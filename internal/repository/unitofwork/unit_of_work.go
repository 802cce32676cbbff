package unitofwork

import (
	"context"

	"content-variation-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProjectRepository() contract.ProjectRepository
	PromptRepository() contract.PromptRepository
	UsageRepository() contract.UsageRepository
}
