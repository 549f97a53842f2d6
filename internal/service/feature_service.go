// FILE: internal/service/feature_service.go
// Feature catalog operations (admin tier), each threaded through the hook
// pipeline: before hook -> guarded main logic -> after hook.
package service

import (
	"context"
	"errors"
	"fmt"

	"featuregate-be/internal/apperror"
	"featuregate-be/internal/dto"
	"featuregate-be/internal/entity"
	"featuregate-be/internal/hook"
	"featuregate-be/internal/pkg/logger"
	"featuregate-be/internal/repository/contract"
	"featuregate-be/internal/repository/specification"
	"featuregate-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type FeatureService interface {
	Create(ctx context.Context, session *entity.Session, req dto.CreateFeatureRequest) (*dto.FeatureResponse, error)
	List(ctx context.Context, session *entity.Session) ([]*dto.FeatureResponse, error)
	Get(ctx context.Context, session *entity.Session, id uuid.UUID) (*dto.FeatureResponse, error)
	Update(ctx context.Context, session *entity.Session, req dto.UpdateFeatureRequest) (*dto.FeatureResponse, error)
	Toggle(ctx context.Context, session *entity.Session, req dto.ToggleFeatureRequest) (*dto.FeatureResponse, error)
	Delete(ctx context.Context, session *entity.Session, req dto.DeleteFeatureRequest) (*dto.FeatureResponse, error)
}

type featureService struct {
	uowFactory unitofwork.RepositoryFactory
	directory  contract.PrincipalDirectory
	hooks      *hook.Registry
	logger     logger.ILogger
}

func NewFeatureService(
	uowFactory unitofwork.RepositoryFactory,
	directory contract.PrincipalDirectory,
	hooks *hook.Registry,
	sysLogger logger.ILogger,
) FeatureService {
	if hooks == nil {
		hooks = &hook.Registry{}
	}
	return &featureService{
		uowFactory: uowFactory,
		directory:  directory,
		hooks:      hooks,
		logger:     sysLogger,
	}
}

func (s *featureService) Create(ctx context.Context, session *entity.Session, req dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	hc, err := requireAdmin(ctx, s.directory, session)
	if err != nil {
		return nil, err
	}

	return hook.Run(ctx, hc, s.hooks.CreateFeature, req, func(ctx context.Context, req dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
		uow := s.uowFactory.NewUnitOfWork(ctx)

		// Advisory probe; the unique index on name is the real guard.
		existing, err := uow.FeatureRepository().FindByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.Conflict(fmt.Sprintf("feature with name '%s' already exists", req.Name))
		}

		feature := &entity.Feature{
			Name:        req.Name,
			DisplayName: req.DisplayName,
			Description: req.Description,
			Active:      req.Active,
		}
		if err := uow.FeatureRepository().Create(ctx, feature); err != nil {
			if errors.Is(err, contract.ErrDuplicate) {
				return nil, apperror.Conflict(fmt.Sprintf("feature with name '%s' already exists", req.Name))
			}
			return nil, err
		}

		s.logger.Info("feature", "feature created", map[string]interface{}{
			"id":   feature.Id,
			"name": feature.Name,
		})
		return toFeatureResponse(feature), nil
	})
}

func (s *featureService) List(ctx context.Context, session *entity.Session) ([]*dto.FeatureResponse, error) {
	hc, err := requireAdmin(ctx, s.directory, session)
	if err != nil {
		return nil, err
	}

	return hook.Run(ctx, hc, s.hooks.ListFeatures, dto.ListFeaturesRequest{}, func(ctx context.Context, _ dto.ListFeaturesRequest) ([]*dto.FeatureResponse, error) {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		features, err := uow.FeatureRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
		if err != nil {
			return nil, err
		}
		return toFeatureResponses(features), nil
	})
}

func (s *featureService) Get(ctx context.Context, session *entity.Session, id uuid.UUID) (*dto.FeatureResponse, error) {
	_, err := requireAdmin(ctx, s.directory, session)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, apperror.NotFound("feature not found")
	}
	return toFeatureResponse(feature), nil
}

func (s *featureService) Update(ctx context.Context, session *entity.Session, req dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
	hc, err := requireAdmin(ctx, s.directory, session)
	if err != nil {
		return nil, err
	}

	return hook.Run(ctx, hc, s.hooks.UpdateFeature, req, func(ctx context.Context, req dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
		uow := s.uowFactory.NewUnitOfWork(ctx)

		feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: req.Id})
		if err != nil {
			return nil, err
		}
		if feature == nil {
			return nil, apperror.NotFound("feature not found")
		}

		// Partial merge: only fields present in the request are applied.
		if req.DisplayName != nil {
			feature.DisplayName = *req.DisplayName
		}
		if req.Description != nil {
			feature.Description = *req.Description
		}
		if req.Active != nil {
			feature.Active = *req.Active
		}

		if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
			return nil, err
		}
		return toFeatureResponse(feature), nil
	})
}

func (s *featureService) Toggle(ctx context.Context, session *entity.Session, req dto.ToggleFeatureRequest) (*dto.FeatureResponse, error) {
	hc, err := requireAdmin(ctx, s.directory, session)
	if err != nil {
		return nil, err
	}

	return hook.Run(ctx, hc, s.hooks.ToggleFeature, req, func(ctx context.Context, req dto.ToggleFeatureRequest) (*dto.FeatureResponse, error) {
		if req.Active == nil {
			return nil, apperror.InvalidInput("active is required")
		}

		uow := s.uowFactory.NewUnitOfWork(ctx)
		feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: req.Id})
		if err != nil {
			return nil, err
		}
		if feature == nil {
			return nil, apperror.NotFound("feature not found")
		}

		feature.Active = *req.Active
		if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
			return nil, err
		}

		s.logger.Info("feature", "feature toggled", map[string]interface{}{
			"id":     feature.Id,
			"name":   feature.Name,
			"active": feature.Active,
		})
		return toFeatureResponse(feature), nil
	})
}

func (s *featureService) Delete(ctx context.Context, session *entity.Session, req dto.DeleteFeatureRequest) (*dto.FeatureResponse, error) {
	hc, err := requireAdmin(ctx, s.directory, session)
	if err != nil {
		return nil, err
	}

	return hook.Run(ctx, hc, s.hooks.DeleteFeature, req, func(ctx context.Context, req dto.DeleteFeatureRequest) (*dto.FeatureResponse, error) {
		uow := s.uowFactory.NewUnitOfWork(ctx)

		feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: req.Id})
		if err != nil {
			return nil, err
		}
		if feature == nil {
			return nil, apperror.NotFound("feature not found")
		}

		// Flags cascade at the store level.
		if err := uow.FeatureRepository().Delete(ctx, req.Id); err != nil {
			return nil, err
		}

		s.logger.Info("feature", "feature deleted", map[string]interface{}{
			"id":   feature.Id,
			"name": feature.Name,
		})
		return toFeatureResponse(feature), nil
	})
}
