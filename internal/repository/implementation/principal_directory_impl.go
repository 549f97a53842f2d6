// FILE: internal/repository/implementation/principal_directory_impl.go
// Directory lookups against the external identity tables, with a short-TTL
// cache on the admin-role check. Resolved flags are never cached here.
package implementation

import (
	"context"
	"errors"
	"time"

	"featuregate-be/internal/entity"
	"featuregate-be/internal/model"
	"featuregate-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const roleAdmin = "admin"

type PrincipalDirectoryImpl struct {
	db        *gorm.DB
	roleCache *cache.Cache
}

func NewPrincipalDirectory(db *gorm.DB) contract.PrincipalDirectory {
	return &PrincipalDirectoryImpl{
		db:        db,
		roleCache: cache.New(1*time.Minute, 5*time.Minute),
	}
}

func (d *PrincipalDirectoryImpl) Exists(ctx context.Context, principal entity.Principal) (bool, error) {
	if principal.IsZero() {
		return false, nil
	}
	var count int64
	query := d.db.WithContext(ctx)
	switch principal.Kind {
	case entity.PrincipalOrganization:
		query = query.Model(&model.Organization{})
	case entity.PrincipalUser:
		query = query.Model(&model.User{})
	default:
		return false, nil
	}
	if err := query.Where("id = ?", principal.Id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (d *PrincipalDirectoryImpl) IsAdmin(ctx context.Context, userId uuid.UUID) (bool, error) {
	key := userId.String()
	if cached, found := d.roleCache.Get(key); found {
		return cached.(bool), nil
	}

	var user model.User
	if err := d.db.WithContext(ctx).Select("role").Where("id = ?", userId).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	isAdmin := user.Role == roleAdmin
	d.roleCache.Set(key, isAdmin, cache.DefaultExpiration)
	return isAdmin, nil
}

func (d *PrincipalDirectoryImpl) IsMember(ctx context.Context, userId uuid.UUID, organizationId uuid.UUID) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&model.OrganizationMember{}).
		Where("organization_id = ? AND user_id = ?", organizationId, userId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
