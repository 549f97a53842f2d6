// FILE: internal/entity/audit_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is one recorded hook event (operation + actor + payload).
type AuditLog struct {
	Id        uuid.UUID
	Operation string
	ActorId   *uuid.UUID
	Payload   map[string]interface{}
	CreatedAt time.Time
}
