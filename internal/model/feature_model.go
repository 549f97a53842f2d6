// FILE: internal/model/feature_model.go
// GORM model for the features table
package model

import (
	"time"

	"github.com/google/uuid"
)

// Feature is the persisted feature catalog row. The unique index on name
// closes the duplicate-name race left open by the advisory pre-create probe.
type Feature struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	DisplayName string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Active      bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Feature) TableName() string {
	return "features"
}
