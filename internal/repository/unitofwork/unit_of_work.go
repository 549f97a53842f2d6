package unitofwork

import (
	"context"

	"featuregate-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FeatureRepository() contract.FeatureRepository
	FlagRepository() contract.FlagRepository
	AuditLogRepository() contract.AuditLogRepository
}
