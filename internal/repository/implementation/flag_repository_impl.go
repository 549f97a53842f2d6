// FILE: internal/repository/implementation/flag_repository_impl.go
// Implementation of FlagRepository
package implementation

import (
	"context"
	"errors"

	"featuregate-be/internal/entity"
	"featuregate-be/internal/mapper"
	"featuregate-be/internal/model"
	"featuregate-be/internal/repository/contract"
	"featuregate-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FlagMapper
}

func NewFlagRepository(db *gorm.DB) contract.FlagRepository {
	return &FlagRepositoryImpl{
		db:     db,
		mapper: mapper.NewFlagMapper(),
	}
}

func (r *FlagRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FlagRepositoryImpl) Create(ctx context.Context, flag *entity.Flag) error {
	m := r.mapper.ToModel(flag)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return contract.ErrDuplicate
		}
		return err
	}
	*flag = *r.mapper.ToEntity(m)
	return nil
}

func (r *FlagRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Flag{}, id).Error
}

func (r *FlagRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Flag, error) {
	var m model.Flag
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FlagRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Flag, error) {
	var models []*model.Flag
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
