// FILE: internal/entity/flag_entity.go
// Domain entities for per-principal feature flags
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Flag is a per-principal override for one feature. Exactly one of
// OrganizationId/UserId is set, depending on the principal the flag targets.
type Flag struct {
	Id             uuid.UUID
	OrganizationId *uuid.UUID
	UserId         *uuid.UUID
	FeatureId      uuid.UUID
	Enabled        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Principal returns the tagged principal this flag targets.
func (f *Flag) Principal() Principal {
	if f.OrganizationId != nil {
		return OrganizationPrincipal(*f.OrganizationId)
	}
	if f.UserId != nil {
		return UserPrincipal(*f.UserId)
	}
	return Principal{}
}

// FlagWithDetails is the read-only composite returned on listing reads.
// Never persisted.
type FlagWithDetails struct {
	Flag    *Flag
	Feature *Feature
}
