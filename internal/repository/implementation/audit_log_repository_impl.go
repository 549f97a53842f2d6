// FILE: internal/repository/implementation/audit_log_repository_impl.go
package implementation

import (
	"context"

	"featuregate-be/internal/entity"
	"featuregate-be/internal/mapper"
	"featuregate-be/internal/model"
	"featuregate-be/internal/repository/contract"
	"featuregate-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AuditLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AuditMapper
}

func NewAuditLogRepository(db *gorm.DB) contract.AuditLogRepository {
	return &AuditLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewAuditMapper(),
	}
}

func (r *AuditLogRepositoryImpl) Create(ctx context.Context, log *entity.AuditLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *AuditLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditLog, error) {
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	var models []*model.AuditLog
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	logs := make([]*entity.AuditLog, 0, len(models))
	for _, m := range models {
		logs = append(logs, r.mapper.ToEntity(m))
	}
	return logs, nil
}
