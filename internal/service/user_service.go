package service

import (
	"context"

	"content-variation-be/internal/dto"
	"content-variation-be/internal/entity"
	"content-variation-be/internal/repository/specification"
	"content-variation-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserService interface {
	Profile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) Profile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	usage, err := uow.UsageRepository().CountByAction(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	// Zero-fill so the client always sees every counter.
	for _, action := range []string{
		entity.UsageActionExtract,
		entity.UsageActionCompile,
		entity.UsageActionSaveProject,
		entity.UsageActionSavePrompt,
	} {
		if _, ok := usage[action]; !ok {
			usage[action] = 0
		}
	}

	return &dto.ProfileResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		Usage:     usage,
		CreatedAt: user.CreatedAt,
	}, nil
}
