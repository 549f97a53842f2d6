// FILE: internal/service/flag_service.go
// Per-principal flag operations. Set/Remove/List are admin tier; Available
// is the member-facing read resolved through the feature resolution engine.
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

type FlagService interface {
	Set(ctx context.Context, session *entity.Session, req dto.SetFlagRequest) (*dto.FlagResponse, error)
	Remove(ctx context.Context, session *entity.Session, req dto.RemoveFlagRequest) (*dto.RemoveFlagResponse, error)
	List(ctx context.Context, session *entity.Session, req dto.ListFlagsRequest) ([]*dto.FlagResponse, error)
	Available(ctx context.Context, session *entity.Session) ([]*dto.FlagResponse, error)
}

type flagService struct {
	uowFactory unitofwork.RepositoryFactory
	directory  contract.PrincipalDirectory
	resolver   *FeatureResolver
	hooks      *hook.Registry
	scope      entity.ScopeMode
	logger     logger.ILogger
}

func NewFlagService(
	uowFactory unitofwork.RepositoryFactory,
	directory contract.PrincipalDirectory,
	resolver *FeatureResolver,
	hooks *hook.Registry,
	scope entity.ScopeMode,
	sysLogger logger.ILogger,
) FlagService {
	if hooks == nil {
		hooks = &hook.Registry{}
	}
	return &flagService{
		uowFactory: uowFactory,
		directory:  directory,
		resolver:   resolver,
		hooks:      hooks,
		scope:      scope,
		logger:     sysLogger,
	}
}

// principalFrom validates the polymorphic principal reference against the
// deployment scope mode. Exactly one of the ids must be set.
func (s *flagService) principalFrom(organizationId, userId *uuid.UUID) (entity.Principal, error) {
	if organizationId != nil && userId != nil {
		return entity.Principal{}, apperror.InvalidInput("provide either organization_id or user_id, not both")
	}

	var principal entity.Principal
	switch {
	case organizationId != nil:
		principal = entity.OrganizationPrincipal(*organizationId)
	case userId != nil:
		principal = entity.UserPrincipal(*userId)
	default:
		return entity.Principal{}, apperror.InvalidInput("organization_id or user_id is required")
	}

	if !s.scope.Allows(principal.Kind) {
		return entity.Principal{}, apperror.InvalidInput(fmt.Sprintf("%s-scoped flags are not enabled for this deployment", principal.Kind))
	}
	return principal, nil
}

func (s *flagService) Set(ctx context.Context, session *entity.Session, req dto.SetFlagRequest) (*dto.FlagResponse, error) {
	hc, err := requireAdmin(ctx, s.directory, session)
	if err != nil {
		return nil, err
	}

	return hook.Run(ctx, hc, s.hooks.SetFlag, req, func(ctx context.Context, req dto.SetFlagRequest) (*dto.FlagResponse, error) {
		principal, err := s.principalFrom(req.OrganizationId, req.UserId)
		if err != nil {
			return nil, err
		}

		uow := s.uowFactory.NewUnitOfWork(ctx)

		feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: req.FeatureId})
		if err != nil {
			return nil, err
		}
		if feature == nil {
			return nil, apperror.NotFound("feature not found")
		}
		// A flag cannot target a globally inactive feature, whatever the
		// requested enabled value.
		if !feature.Active {
			return nil, apperror.InvalidInput(fmt.Sprintf("feature '%s' is not active", feature.Name))
		}

		exists, err := s.directory.Exists(ctx, principal)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperror.NotFound(fmt.Sprintf("%s not found", principal.Kind))
		}

		// Create-only: changing an existing flag is remove-then-set. The
		// probe is advisory; the composite unique index closes the race.
		existing, err := uow.FlagRepository().FindOne(ctx,
			specification.OwnedByPrincipal{Principal: principal},
			specification.ByFeature{FeatureID: req.FeatureId},
		)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.Conflict("flag already exists for this principal and feature")
		}

		flag := &entity.Flag{
			FeatureId: req.FeatureId,
			Enabled:   req.Enabled,
		}
		switch principal.Kind {
		case entity.PrincipalOrganization:
			id := principal.Id
			flag.OrganizationId = &id
		case entity.PrincipalUser:
			id := principal.Id
			flag.UserId = &id
		}

		if err := uow.FlagRepository().Create(ctx, flag); err != nil {
			if errors.Is(err, contract.ErrDuplicate) {
				return nil, apperror.Conflict("flag already exists for this principal and feature")
			}
			return nil, err
		}

		s.logger.Info("flag", "flag set", map[string]interface{}{
			"id":         flag.Id,
			"feature_id": flag.FeatureId,
			"principal":  principal.Kind,
			"enabled":    flag.Enabled,
		})
		return toFlagResponse(flag, feature), nil
	})
}

func (s *flagService) Remove(ctx context.Context, session *entity.Session, req dto.RemoveFlagRequest) (*dto.RemoveFlagResponse, error) {
	hc, err := requireAdmin(ctx, s.directory, session)
	if err != nil {
		return nil, err
	}

	return hook.Run(ctx, hc, s.hooks.RemoveFlag, req, func(ctx context.Context, req dto.RemoveFlagRequest) (*dto.RemoveFlagResponse, error) {
		principal, err := s.principalFrom(req.OrganizationId, req.UserId)
		if err != nil {
			return nil, err
		}

		uow := s.uowFactory.NewUnitOfWork(ctx)

		flag, err := uow.FlagRepository().FindOne(ctx,
			specification.OwnedByPrincipal{Principal: principal},
			specification.ByFeature{FeatureID: req.FeatureId},
		)
		if err != nil {
			return nil, err
		}
		if flag == nil {
			return nil, apperror.NotFound("flag not found")
		}

		// Delete by internal id, not the compound key.
		if err := uow.FlagRepository().Delete(ctx, flag.Id); err != nil {
			return nil, err
		}

		s.logger.Info("flag", "flag removed", map[string]interface{}{
			"id":         flag.Id,
			"feature_id": flag.FeatureId,
			"principal":  principal.Kind,
		})
		return &dto.RemoveFlagResponse{Removed: true}, nil
	})
}

func (s *flagService) List(ctx context.Context, session *entity.Session, req dto.ListFlagsRequest) ([]*dto.FlagResponse, error) {
	hc, err := requireAdmin(ctx, s.directory, session)
	if err != nil {
		return nil, err
	}

	return hook.Run(ctx, hc, s.hooks.ListFlags, req, func(ctx context.Context, req dto.ListFlagsRequest) ([]*dto.FlagResponse, error) {
		principal, err := s.principalFrom(req.OrganizationId, req.UserId)
		if err != nil {
			return nil, err
		}

		uow := s.uowFactory.NewUnitOfWork(ctx)
		details, err := s.resolver.FlagsWithDetails(ctx, uow, principal)
		if err != nil {
			return nil, err
		}
		return toFlagResponses(details), nil
	})
}

func (s *flagService) Available(ctx context.Context, session *entity.Session) ([]*dto.FlagResponse, error) {
	hc, err := requireAuthenticated(session)
	if err != nil {
		return nil, err
	}

	return hook.Run(ctx, hc, s.hooks.AvailableFeatures, dto.AvailableFeaturesRequest{}, func(ctx context.Context, _ dto.AvailableFeaturesRequest) ([]*dto.FlagResponse, error) {
		principal, ok := s.callerPrincipal(session)
		if !ok {
			return []*dto.FlagResponse{}, nil
		}

		// Not being a member means nothing visible, not an error. This is
		// the one read path that swallows the failure.
		if principal.Kind == entity.PrincipalOrganization {
			isMember, err := s.directory.IsMember(ctx, session.UserId, principal.Id)
			if err != nil || !isMember {
				return []*dto.FlagResponse{}, nil
			}
		}

		uow := s.uowFactory.NewUnitOfWork(ctx)
		live, err := s.resolver.LiveFlags(ctx, uow, principal)
		if err != nil {
			return nil, err
		}
		return toFlagResponses(live), nil
	})
}

// callerPrincipal derives the session's own principal for the available
// read: the active organization when organization scope applies, the user
// otherwise.
func (s *flagService) callerPrincipal(session *entity.Session) (entity.Principal, bool) {
	if s.scope.Allows(entity.PrincipalOrganization) && session.ActiveOrganizationId != nil {
		return entity.OrganizationPrincipal(*session.ActiveOrganizationId), true
	}
	if s.scope.Allows(entity.PrincipalUser) {
		return entity.UserPrincipal(session.UserId), true
	}
	return entity.Principal{}, false
}
