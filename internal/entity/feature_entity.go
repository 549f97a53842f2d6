// FILE: internal/entity/feature_entity.go
// Domain entity for the feature catalog
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feature is a globally defined capability with a global kill switch.
type Feature struct {
	Id          uuid.UUID
	Name        string // Unique slug, immutable after creation: beta_dashboard, csv_export, etc.
	DisplayName string // Human label: "Beta Dashboard"
	Description string
	Active      bool // Global enable/disable
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
