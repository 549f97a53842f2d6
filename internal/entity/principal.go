// FILE: internal/entity/principal.go
// Tagged principal variant and deployment scope mode
package entity

import "github.com/google/uuid"

type PrincipalKind string

const (
	PrincipalOrganization PrincipalKind = "organization"
	PrincipalUser         PrincipalKind = "user"
)

// Principal is the entity a flag is scoped to: Organization(id) | User(id).
type Principal struct {
	Kind PrincipalKind
	Id   uuid.UUID
}

func OrganizationPrincipal(id uuid.UUID) Principal {
	return Principal{Kind: PrincipalOrganization, Id: id}
}

func UserPrincipal(id uuid.UUID) Principal {
	return Principal{Kind: PrincipalUser, Id: id}
}

func (p Principal) IsZero() bool {
	return p.Kind == "" || p.Id == uuid.Nil
}

// ScopeMode selects which principal kinds a deployment accepts for flags.
type ScopeMode string

const (
	ScopeOrganization ScopeMode = "organization"
	ScopeUser         ScopeMode = "user"
	ScopeBoth         ScopeMode = "both"
)

func (m ScopeMode) Allows(kind PrincipalKind) bool {
	switch m {
	case ScopeBoth:
		return kind == PrincipalOrganization || kind == PrincipalUser
	case ScopeOrganization:
		return kind == PrincipalOrganization
	case ScopeUser:
		return kind == PrincipalUser
	}
	return false
}
