// FILE: internal/mapper/feature_mapper.go
// Mapper for Feature entity <-> model conversion
package mapper

import (
	"featuregate-be/internal/entity"
	"featuregate-be/internal/model"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToEntity(model *model.Feature) *entity.Feature {
	if model == nil {
		return nil
	}
	return &entity.Feature{
		Id:          model.Id,
		Name:        model.Name,
		DisplayName: model.DisplayName,
		Description: model.Description,
		Active:      model.Active,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func (m *FeatureMapper) ToModel(entity *entity.Feature) *model.Feature {
	if entity == nil {
		return nil
	}
	return &model.Feature{
		Id:          entity.Id,
		Name:        entity.Name,
		DisplayName: entity.DisplayName,
		Description: entity.Description,
		Active:      entity.Active,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func (m *FeatureMapper) ToEntities(models []*model.Feature) []*entity.Feature {
	entities := make([]*entity.Feature, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
