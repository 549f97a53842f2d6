// FILE: internal/mapper/flag_mapper.go
// Mapper for Flag entity <-> model conversion
package mapper

import (
	"featuregate-be/internal/entity"
	"featuregate-be/internal/model"
)

type FlagMapper struct{}

func NewFlagMapper() *FlagMapper {
	return &FlagMapper{}
}

func (m *FlagMapper) ToEntity(model *model.Flag) *entity.Flag {
	if model == nil {
		return nil
	}
	return &entity.Flag{
		Id:             model.Id,
		OrganizationId: model.OrganizationId,
		UserId:         model.UserId,
		FeatureId:      model.FeatureId,
		Enabled:        model.Enabled,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func (m *FlagMapper) ToModel(entity *entity.Flag) *model.Flag {
	if entity == nil {
		return nil
	}
	return &model.Flag{
		Id:             entity.Id,
		OrganizationId: entity.OrganizationId,
		UserId:         entity.UserId,
		FeatureId:      entity.FeatureId,
		Enabled:        entity.Enabled,
		CreatedAt:      entity.CreatedAt,
		UpdatedAt:      entity.UpdatedAt,
	}
}

func (m *FlagMapper) ToEntities(models []*model.Flag) []*entity.Flag {
	entities := make([]*entity.Flag, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
