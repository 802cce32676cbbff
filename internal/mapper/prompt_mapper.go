package mapper

import (
	"content-variation-be/internal/entity"
	"content-variation-be/internal/model"
)

type PromptMapper struct{}

func NewPromptMapper() *PromptMapper {
	return &PromptMapper{}
}

func (m *PromptMapper) ToEntity(p *model.SavedPrompt) *entity.SavedPrompt {
	if p == nil {
		return nil
	}

	return &entity.SavedPrompt{
		Id:          p.Id,
		UserId:      p.UserId,
		ProjectId:   p.ProjectId,
		ProjectName: p.ProjectName,
		PromptText:  p.PromptText,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *PromptMapper) ToModel(p *entity.SavedPrompt) *model.SavedPrompt {
	if p == nil {
		return nil
	}

	return &model.SavedPrompt{
		Id:          p.Id,
		UserId:      p.UserId,
		ProjectId:   p.ProjectId,
		ProjectName: p.ProjectName,
		PromptText:  p.PromptText,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *PromptMapper) ToEntities(prompts []*model.SavedPrompt) []*entity.SavedPrompt {
	entities := make([]*entity.SavedPrompt, len(prompts))
	for i, p := range prompts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
