// FILE: internal/model/flag_model.go
// GORM model for the per-principal flags table
package model

import (
	"time"

	"github.com/google/uuid"
)

// Flag is the persisted per-principal override row. The composite unique
// index enforces at most one flag per (principal, feature); deleting a
// feature cascades its flags at the database level.
type Flag struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_flags_principal_feature"`
	UserId         *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_flags_principal_feature"`
	FeatureId      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_flags_principal_feature"`
	Enabled        bool       `gorm:"not null;default:false"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`

	Feature *Feature `gorm:"foreignKey:FeatureId;constraint:OnDelete:CASCADE"`
}

func (Flag) TableName() string {
	return "flags"
}
