// FILE: internal/dto/flag_dto.go
// DTOs for per-principal flag operations
package dto

import (
	"time"

	"github.com/google/uuid"
)

// SetFlagRequest creates a flag for one principal on one feature. Exactly
// one of organization_id/user_id must be set; there are no upsert semantics,
// changing an existing flag is remove-then-set.
type SetFlagRequest struct {
	OrganizationId *uuid.UUID `json:"organization_id,omitempty"`
	UserId         *uuid.UUID `json:"user_id,omitempty"`
	FeatureId      uuid.UUID  `json:"feature_id" validate:"required"`
	Enabled        bool       `json:"enabled"`
}

// RemoveFlagRequest deletes the flag for (principal, feature).
type RemoveFlagRequest struct {
	OrganizationId *uuid.UUID `json:"organization_id,omitempty"`
	UserId         *uuid.UUID `json:"user_id,omitempty"`
	FeatureId      uuid.UUID  `json:"feature_id" validate:"required"`
}

// ListFlagsRequest lists a principal's flags with feature details.
type ListFlagsRequest struct {
	OrganizationId *uuid.UUID `json:"organization_id,omitempty"`
	UserId         *uuid.UUID `json:"user_id,omitempty"`
}

// AvailableFeaturesRequest carries no payload; the principal comes from the
// caller's session.
type AvailableFeaturesRequest struct{}

// FlagResponse is the wire representation of a flag, optionally joined with
// its feature.
type FlagResponse struct {
	Id             uuid.UUID        `json:"id"`
	OrganizationId *uuid.UUID       `json:"organization_id,omitempty"`
	UserId         *uuid.UUID       `json:"user_id,omitempty"`
	FeatureId      uuid.UUID        `json:"feature_id"`
	Enabled        bool             `json:"enabled"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	Feature        *FeatureResponse `json:"feature,omitempty"`
}

// RemoveFlagResponse acknowledges a removal.
type RemoveFlagResponse struct {
	Removed bool `json:"removed"`
}
