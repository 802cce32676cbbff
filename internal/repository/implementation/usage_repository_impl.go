package implementation

import (
	"context"

	"content-variation-be/internal/entity"
	"content-variation-be/internal/mapper"
	"content-variation-be/internal/model"
	"content-variation-be/internal/repository/contract"
	"content-variation-be/internal/repository/specification"

	"gorm.io/gorm"
)

type UsageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUsageRepository(db *gorm.DB) contract.UsageRepository {
	return &UsageRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UsageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UsageRepositoryImpl) Create(ctx context.Context, record *entity.UsageRecord) error {
	m := r.mapper.UsageToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.UsageToEntity(m)
	return nil
}

func (r *UsageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UsageRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UsageRepositoryImpl) CountByAction(ctx context.Context, specs ...specification.Specification) (map[string]int64, error) {
	type row struct {
		Action string
		Total  int64
	}

	var rows []row
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UsageRecord{}), specs...)
	if err := query.Select("action, count(*) as total").Group("action").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Action] = r.Total
	}
	return counts, nil
}
