package mapper

import (
	"encoding/json"
	"time"

	"content-variation-be/internal/entity"
	"content-variation-be/internal/model"

	"gorm.io/datatypes"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToEntity(p *model.Project) (*entity.Project, error) {
	if p == nil {
		return nil, nil
	}

	var images []string
	if len(p.Images) > 0 {
		if err := json.Unmarshal(p.Images, &images); err != nil {
			return nil, err
		}
	}

	var slides []entity.ConfiguredSlide
	if len(p.Slides) > 0 {
		if err := json.Unmarshal(p.Slides, &slides); err != nil {
			return nil, err
		}
	}

	var analysis *entity.AnalysisResult
	if len(p.Analysis) > 0 {
		analysis = &entity.AnalysisResult{}
		if err := json.Unmarshal(p.Analysis, analysis); err != nil {
			return nil, err
		}
	}

	var painPoint entity.PainPointConfig
	if len(p.PainPoint) > 0 {
		if err := json.Unmarshal(p.PainPoint, &painPoint); err != nil {
			return nil, err
		}
	}

	var tone entity.ToneConfig
	if len(p.Tone) > 0 {
		if err := json.Unmarshal(p.Tone, &tone); err != nil {
			return nil, err
		}
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Project{
		Id:             p.Id,
		UserId:         p.UserId,
		Name:           p.Name,
		Images:         images,
		Slides:         slides,
		Analysis:       analysis,
		Brand:          p.Brand,
		PainPoint:      painPoint,
		Tone:           tone,
		VariationCount: p.VariationCount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      updatedAt,
	}, nil
}

func (m *ProjectMapper) ToModel(p *entity.Project) (*model.Project, error) {
	if p == nil {
		return nil, nil
	}

	images, err := json.Marshal(p.Images)
	if err != nil {
		return nil, err
	}

	slides, err := json.Marshal(p.Slides)
	if err != nil {
		return nil, err
	}

	var analysis datatypes.JSON
	if p.Analysis != nil {
		raw, err := json.Marshal(p.Analysis)
		if err != nil {
			return nil, err
		}
		analysis = raw
	}

	painPoint, err := json.Marshal(p.PainPoint)
	if err != nil {
		return nil, err
	}

	tone, err := json.Marshal(p.Tone)
	if err != nil {
		return nil, err
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Project{
		Id:             p.Id,
		UserId:         p.UserId,
		Name:           p.Name,
		Images:         images,
		Slides:         slides,
		Analysis:       analysis,
		Brand:          p.Brand,
		PainPoint:      painPoint,
		Tone:           tone,
		VariationCount: p.VariationCount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      updatedAt,
	}, nil
}

func (m *ProjectMapper) ToEntities(projects []*model.Project) ([]*entity.Project, error) {
	entities := make([]*entity.Project, len(projects))
	for i, p := range projects {
		e, err := m.ToEntity(p)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
