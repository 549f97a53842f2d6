// FILE: internal/repository/memory/audit_log_repository.go
package memory

import (
	"context"

	"featuregate-be/internal/entity"
	"featuregate-be/internal/repository/specification"

	"github.com/google/uuid"
)

type auditLogRepository struct {
	store *Store
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.WriteCalls++

	if log.Id == uuid.Nil {
		log.Id = uuid.New()
	}
	log.CreatedAt = r.store.now()
	stored := *log
	r.store.audits = append(r.store.audits, &stored)
	return nil
}

func (r *auditLogRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*entity.AuditLog, 0, len(r.store.audits))
	for _, a := range r.store.audits {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}
