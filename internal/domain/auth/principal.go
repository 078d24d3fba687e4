package auth

import "todo-api/internal/domain/entity"

// RoleUser is the minimal authenticated role required by every mutation.
const RoleUser = "ROLE_USER"

// Principal is the acting identity resolved from the session token.
// A nil *Principal means the request is anonymous.
type Principal struct {
	UserID uint
	Email  string
	Roles  entity.RoleList
}

// HasRole reports whether the principal carries the given role.
func (p *Principal) HasRole(role string) bool {
	if p == nil {
		return false
	}
	return p.Roles.Has(role)
}
