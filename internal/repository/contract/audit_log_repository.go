// FILE: internal/repository/contract/audit_log_repository.go
package contract

import (
	"context"

	"featuregate-be/internal/entity"
	"featuregate-be/internal/repository/specification"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditLog, error)
}
