// FILE: internal/repository/memory/feature_repository.go
package memory

import (
	"context"
	"sort"

	"featuregate-be/internal/entity"
	"featuregate-be/internal/repository/contract"
	"featuregate-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type featureRepository struct {
	store *Store
}

func (r *featureRepository) Create(ctx context.Context, feature *entity.Feature) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.WriteCalls++

	// Mirror the unique index on name.
	for _, existing := range r.store.features {
		if existing.Name == feature.Name {
			return contract.ErrDuplicate
		}
	}

	if feature.Id == uuid.Nil {
		feature.Id = uuid.New()
	}
	now := r.store.now()
	feature.CreatedAt = now
	feature.UpdatedAt = now

	stored := *feature
	r.store.features[feature.Id] = &stored
	return nil
}

func (r *featureRepository) Update(ctx context.Context, feature *entity.Feature) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.WriteCalls++

	existing, ok := r.store.features[feature.Id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	feature.CreatedAt = existing.CreatedAt
	feature.UpdatedAt = r.store.now()

	stored := *feature
	r.store.features[feature.Id] = &stored
	return nil
}

func (r *featureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.WriteCalls++

	delete(r.store.features, id)
	// FK cascade: flags referencing the feature go with it.
	for flagId, flag := range r.store.flags {
		if flag.FeatureId == id {
			delete(r.store.flags, flagId)
		}
	}
	return nil
}

func (r *featureRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error) {
	features, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(features) == 0 {
		return nil, nil
	}
	return features[0], nil
}

func (r *featureRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feature, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []*entity.Feature
	for _, f := range r.store.features {
		if matchFeature(f, specs) {
			copied := *f
			result = append(result, &copied)
		}
	}
	applyFeatureOrder(result, specs)
	return result, nil
}

func (r *featureRepository) FindByName(ctx context.Context, name string) (*entity.Feature, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, f := range r.store.features {
		if f.Name == name {
			copied := *f
			return &copied, nil
		}
	}
	return nil, nil
}

func matchFeature(f *entity.Feature, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if f.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if f.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.ByName:
			if f.Name != s.Name {
				return false
			}
		case specification.FilterBy:
			if s.Field == "active" {
				if active, ok := s.Value.(bool); !ok || f.Active != active {
					return false
				}
			}
		}
	}
	return true
}

func applyFeatureOrder(features []*entity.Feature, specs []specification.Specification) {
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "created_at" {
			sort.SliceStable(features, func(i, j int) bool {
				if s.Desc {
					return features[i].CreatedAt.After(features[j].CreatedAt)
				}
				return features[i].CreatedAt.Before(features[j].CreatedAt)
			})
		}
	}
}
