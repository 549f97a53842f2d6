// FILE: internal/model/principal_models.go
// Read-only models for the external identity tables the directory queries.
// Ownership of these tables belongs to the identity service; we never write.
package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255)"`
	Role      string    `gorm:"type:varchar(50)"` // user, admin
	CreatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

type Organization struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

func (Organization) TableName() string {
	return "organizations"
}

type OrganizationMember struct {
	OrganizationId uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role           string    `gorm:"type:varchar(50)"`
	CreatedAt      time.Time
}

func (OrganizationMember) TableName() string {
	return "organization_members"
}
