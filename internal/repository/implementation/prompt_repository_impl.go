package implementation

import (
	"context"
	"errors"

	"content-variation-be/internal/entity"
	"content-variation-be/internal/mapper"
	"content-variation-be/internal/model"
	"content-variation-be/internal/repository/contract"
	"content-variation-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PromptRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PromptMapper
}

func NewPromptRepository(db *gorm.DB) contract.PromptRepository {
	return &PromptRepositoryImpl{
		db:     db,
		mapper: mapper.NewPromptMapper(),
	}
}

func (r *PromptRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PromptRepositoryImpl) Create(ctx context.Context, prompt *entity.SavedPrompt) error {
	m := r.mapper.ToModel(prompt)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*prompt = *r.mapper.ToEntity(m)
	return nil
}

func (r *PromptRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SavedPrompt{}, id).Error
}

func (r *PromptRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedPrompt, error) {
	var m model.SavedPrompt
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PromptRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedPrompt, error) {
	var models []*model.SavedPrompt
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PromptRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SavedPrompt{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
