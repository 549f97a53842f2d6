// FILE: internal/entity/session_entity.go
package entity

import "github.com/google/uuid"

// Session is the caller identity handed to services by the transport layer.
// A nil *Session means "no session" and every operation rejects it first.
type Session struct {
	UserId               uuid.UUID
	ActiveOrganizationId *uuid.UUID
}
