// FILE: internal/dto/audit_dto.go
package dto

import "github.com/google/uuid"

// AuditEventMessage is the payload published on the audit topic by the
// default after-hooks and consumed by the audit consumer service.
type AuditEventMessage struct {
	Operation string                 `json:"operation"`
	ActorId   *uuid.UUID             `json:"actor_id,omitempty"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Failed    bool                   `json:"failed"`
	Error     string                 `json:"error,omitempty"`
}
