// FILE: internal/dto/feature_dto.go
// DTOs for feature catalog operations
package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateFeatureRequest adds a new feature to the catalog.
type CreateFeatureRequest struct {
	Name        string `json:"name" validate:"required"`
	DisplayName string `json:"display_name" validate:"required"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// ListFeaturesRequest carries no payload; it exists so the hook pipeline has
// a concrete input type for the list operation.
type ListFeaturesRequest struct{}

// UpdateFeatureRequest partially updates a feature. Pointer fields are only
// applied when present in the request body; name is immutable.
type UpdateFeatureRequest struct {
	Id          uuid.UUID `json:"-"`
	DisplayName *string   `json:"display_name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Active      *bool     `json:"active,omitempty"`
}

// ToggleFeatureRequest flips the global kill switch to an explicit value.
type ToggleFeatureRequest struct {
	Id     uuid.UUID `json:"-"`
	Active *bool     `json:"active" validate:"required"`
}

// DeleteFeatureRequest identifies the feature to remove. Its flags go with
// it via the store-level cascade.
type DeleteFeatureRequest struct {
	Id uuid.UUID `json:"-"`
}

// FeatureResponse is the wire representation of a catalog feature.
type FeatureResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
