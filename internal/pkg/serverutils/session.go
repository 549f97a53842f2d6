// FILE: internal/pkg/serverutils/session.go
package serverutils

import (
	"featuregate-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionFromCtx rebuilds the caller session from the locals set by
// JwtMiddleware. Returns nil when there is no usable session; the services
// turn that into Unauthorized.
func SessionFromCtx(ctx *fiber.Ctx) *entity.Session {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return nil
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return nil
	}

	session := &entity.Session{UserId: userId}
	if orgStr, ok := ctx.Locals("active_organization_id").(string); ok {
		if orgId, err := uuid.Parse(orgStr); err == nil {
			session.ActiveOrganizationId = &orgId
		}
	}
	return session
}
