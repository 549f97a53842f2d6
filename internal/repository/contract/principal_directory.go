// FILE: internal/repository/contract/principal_directory.go
// External identity lookups the core consumes. The identity tables belong
// to another service; this interface is the boundary.
package contract

import (
	"context"

	"featuregate-be/internal/entity"

	"github.com/google/uuid"
)

type PrincipalDirectory interface {
	Exists(ctx context.Context, principal entity.Principal) (bool, error)
	IsAdmin(ctx context.Context, userId uuid.UUID) (bool, error)
	IsMember(ctx context.Context, userId uuid.UUID, organizationId uuid.UUID) (bool, error)
}
