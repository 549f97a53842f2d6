// FILE: internal/repository/memory/flag_repository.go
package memory

import (
	"context"

	"featuregate-be/internal/entity"
	"featuregate-be/internal/repository/contract"
	"featuregate-be/internal/repository/specification"

	"github.com/google/uuid"
)

type flagRepository struct {
	store *Store
}

func (r *flagRepository) Create(ctx context.Context, flag *entity.Flag) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.WriteCalls++

	// Mirror the composite unique index on (principal, feature).
	for _, existing := range r.store.flags {
		if existing.FeatureId == flag.FeatureId && samePrincipal(existing, flag) {
			return contract.ErrDuplicate
		}
	}

	if flag.Id == uuid.Nil {
		flag.Id = uuid.New()
	}
	now := r.store.now()
	flag.CreatedAt = now
	flag.UpdatedAt = now

	stored := *flag
	r.store.flags[flag.Id] = &stored
	return nil
}

func (r *flagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.WriteCalls++

	delete(r.store.flags, id)
	return nil
}

func (r *flagRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Flag, error) {
	flags, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(flags) == 0 {
		return nil, nil
	}
	return flags[0], nil
}

func (r *flagRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Flag, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []*entity.Flag
	for _, f := range r.store.flags {
		if matchFlag(f, specs) {
			copied := *f
			result = append(result, &copied)
		}
	}
	return result, nil
}

func samePrincipal(a, b *entity.Flag) bool {
	if a.OrganizationId != nil && b.OrganizationId != nil {
		return *a.OrganizationId == *b.OrganizationId
	}
	if a.UserId != nil && b.UserId != nil {
		return *a.UserId == *b.UserId
	}
	return false
}

func matchFlag(f *entity.Flag, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if f.Id != s.ID {
				return false
			}
		case specification.ByFeature:
			if f.FeatureId != s.FeatureID {
				return false
			}
		case specification.OwnedByPrincipal:
			switch s.Principal.Kind {
			case entity.PrincipalOrganization:
				if f.OrganizationId == nil || *f.OrganizationId != s.Principal.Id {
					return false
				}
			case entity.PrincipalUser:
				if f.UserId == nil || *f.UserId != s.Principal.Id {
					return false
				}
			default:
				return false
			}
		case specification.FilterBy:
			if s.Field == "enabled" {
				if enabled, ok := s.Value.(bool); !ok || f.Enabled != enabled {
					return false
				}
			}
		}
	}
	return true
}
