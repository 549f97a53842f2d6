package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"featuregate-be/internal/entity"
)

// ByName filters features by their unique slug
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// OwnedByPrincipal filters flags by their tagged principal reference
type OwnedByPrincipal struct {
	Principal entity.Principal
}

func (s OwnedByPrincipal) Apply(db *gorm.DB) *gorm.DB {
	switch s.Principal.Kind {
	case entity.PrincipalOrganization:
		return db.Where("organization_id = ?", s.Principal.Id)
	case entity.PrincipalUser:
		return db.Where("user_id = ?", s.Principal.Id)
	}
	return db
}

// ByFeature filters flags by the feature they reference
type ByFeature struct {
	FeatureID uuid.UUID
}

func (s ByFeature) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feature_id = ?", s.FeatureID)
}
