// FILE: internal/service/resolver.go
// Feature resolution engine: joins per-principal flags with the feature
// catalog to decide what a principal actually sees.
package service

import (
	"context"

	"featuregate-be/internal/entity"
	"featuregate-be/internal/repository/specification"
	"featuregate-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type FeatureResolver struct{}

func NewFeatureResolver() *FeatureResolver {
	return &FeatureResolver{}
}

// LiveFlags returns the flags a principal may actually use: the flag row
// must have enabled=true AND its feature must have active=true. A flag whose
// feature is inactive or gone is silently dropped; a disabled flag behaves
// like an absent one.
func (r *FeatureResolver) LiveFlags(ctx context.Context, uow unitofwork.UnitOfWork, principal entity.Principal) ([]*entity.FlagWithDetails, error) {
	flags, err := uow.FlagRepository().FindAll(ctx,
		specification.OwnedByPrincipal{Principal: principal},
		specification.Filter("enabled", true),
	)
	if err != nil {
		return nil, err
	}
	if len(flags) == 0 {
		return []*entity.FlagWithDetails{}, nil
	}

	features, err := uow.FeatureRepository().FindAll(ctx,
		specification.ByIDs{IDs: featureIds(flags)},
		specification.Filter("active", true),
	)
	if err != nil {
		return nil, err
	}

	return join(flags, features, false), nil
}

// FlagsWithDetails returns every flag for a principal joined with its
// feature, without the live gating. Admin listing view.
func (r *FeatureResolver) FlagsWithDetails(ctx context.Context, uow unitofwork.UnitOfWork, principal entity.Principal) ([]*entity.FlagWithDetails, error) {
	flags, err := uow.FlagRepository().FindAll(ctx,
		specification.OwnedByPrincipal{Principal: principal},
	)
	if err != nil {
		return nil, err
	}
	if len(flags) == 0 {
		return []*entity.FlagWithDetails{}, nil
	}

	features, err := uow.FeatureRepository().FindAll(ctx,
		specification.ByIDs{IDs: featureIds(flags)},
	)
	if err != nil {
		return nil, err
	}

	return join(flags, features, true), nil
}

func featureIds(flags []*entity.Flag) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(flags))
	seen := make(map[uuid.UUID]bool, len(flags))
	for _, f := range flags {
		if !seen[f.FeatureId] {
			seen[f.FeatureId] = true
			ids = append(ids, f.FeatureId)
		}
	}
	return ids
}

// join inner-joins flags to features by feature id. With keepUnmatched the
// flag survives with a nil feature (admin view of a dangling row); otherwise
// unmatched flags are dropped.
func join(flags []*entity.Flag, features []*entity.Feature, keepUnmatched bool) []*entity.FlagWithDetails {
	byId := make(map[uuid.UUID]*entity.Feature, len(features))
	for _, f := range features {
		byId[f.Id] = f
	}

	result := make([]*entity.FlagWithDetails, 0, len(flags))
	for _, flag := range flags {
		feature, ok := byId[flag.FeatureId]
		if !ok && !keepUnmatched {
			continue
		}
		result = append(result, &entity.FlagWithDetails{Flag: flag, Feature: feature})
	}
	return result
}
