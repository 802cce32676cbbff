package mapper

import (
	"content-variation-be/internal/entity"
	"content-variation-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		Id:           u.Id,
		Email:        u.Email,
		FullName:     u.FullName,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	return &model.User{
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) UsageToEntity(r *model.UsageRecord) *entity.UsageRecord {
	if r == nil {
		return nil
	}

	return &entity.UsageRecord{
		Id:        r.Id,
		UserId:    r.UserId,
		Action:    r.Action,
		CreatedAt: r.CreatedAt,
	}
}

func (m *UserMapper) UsageToModel(r *entity.UsageRecord) *model.UsageRecord {
	if r == nil {
		return nil
	}

	return &model.UsageRecord{
		Id:        r.Id,
		UserId:    r.UserId,
		Action:    r.Action,
		CreatedAt: r.CreatedAt,
	}
}
