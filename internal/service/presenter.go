// FILE: internal/service/presenter.go
// Entity -> response DTO conversions shared by the services
package service

import (
	"featuregate-be/internal/dto"
	"featuregate-be/internal/entity"
)

func toFeatureResponse(f *entity.Feature) *dto.FeatureResponse {
	if f == nil {
		return nil
	}
	return &dto.FeatureResponse{
		Id:          f.Id,
		Name:        f.Name,
		DisplayName: f.DisplayName,
		Description: f.Description,
		Active:      f.Active,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func toFeatureResponses(features []*entity.Feature) []*dto.FeatureResponse {
	out := make([]*dto.FeatureResponse, 0, len(features))
	for _, f := range features {
		out = append(out, toFeatureResponse(f))
	}
	return out
}

func toFlagResponse(flag *entity.Flag, feature *entity.Feature) *dto.FlagResponse {
	if flag == nil {
		return nil
	}
	return &dto.FlagResponse{
		Id:             flag.Id,
		OrganizationId: flag.OrganizationId,
		UserId:         flag.UserId,
		FeatureId:      flag.FeatureId,
		Enabled:        flag.Enabled,
		CreatedAt:      flag.CreatedAt,
		UpdatedAt:      flag.UpdatedAt,
		Feature:        toFeatureResponse(feature),
	}
}

func toFlagResponses(details []*entity.FlagWithDetails) []*dto.FlagResponse {
	out := make([]*dto.FlagResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toFlagResponse(d.Flag, d.Feature))
	}
	return out
}
