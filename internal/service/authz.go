// FILE: internal/service/authz.go
// Session and tier checks shared by the gated operations. The session itself
// comes from the transport layer; role lookups go through the directory.
package service

import (
	"context"

	"featuregate-be/internal/apperror"
	"featuregate-be/internal/entity"
	"featuregate-be/internal/hook"
	"featuregate-be/internal/repository/contract"
)

// requireAuthenticated rejects callers without a session. Always the first
// check of every operation.
func requireAuthenticated(session *entity.Session) (*hook.Context, error) {
	if session == nil {
		return nil, apperror.Unauthorized("authentication required")
	}
	return &hook.Context{Session: session}, nil
}

// requireAdmin additionally gates on the administrative role.
func requireAdmin(ctx context.Context, directory contract.PrincipalDirectory, session *entity.Session) (*hook.Context, error) {
	hc, err := requireAuthenticated(session)
	if err != nil {
		return nil, err
	}
	isAdmin, err := directory.IsAdmin(ctx, session.UserId)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, apperror.Forbidden("administrator privileges required")
	}
	return hc, nil
}
