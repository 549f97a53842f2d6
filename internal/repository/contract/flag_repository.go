// FILE: internal/repository/contract/flag_repository.go
// Repository interface for per-principal flags
package contract

import (
	"context"

	"featuregate-be/internal/entity"
	"featuregate-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FlagRepository interface {
	Create(ctx context.Context, flag *entity.Flag) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Flag, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Flag, error)
}
