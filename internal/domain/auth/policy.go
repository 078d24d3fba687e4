package auth

import (
	"fmt"

	"todo-api/internal/domain/model"
)

// Operation names a mutating or reading intent on an entity.
type Operation string

const (
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// EntityKind names the target entity of an operation.
type EntityKind string

const (
	KindTodo     EntityKind = "todo"
	KindCategory EntityKind = "category"
	KindComment  EntityKind = "comment"
)

// Gate is the single authorization policy for every operation. Mutations
// require RoleUser; reads are unconditionally allowed. Deletes additionally
// go through a per-entity CSRF token check (see Tokens).
type Gate struct {
	tokens *TokenManager
}

// NewGate builds a Gate whose delete tokens are derived from csrfSecret.
func NewGate(csrfSecret string) *Gate {
	return &Gate{tokens: NewTokenManager([]byte(csrfSecret))}
}

// Authorize returns nil when principal may perform op on kind, and
// model.ErrUnauthorized otherwise.
func (g *Gate) Authorize(principal *Principal, op Operation, kind EntityKind) error {
	if op == OpRead {
		return nil
	}
	if !principal.HasRole(RoleUser) {
		return fmt.Errorf("%w: %s %s requires %s", model.ErrUnauthorized, op, kind, RoleUser)
	}
	return nil
}

// Tokens exposes the gate's CSRF token manager so the presentation layer can
// issue per-entity delete tokens.
func (g *Gate) Tokens() *TokenManager {
	return g.tokens
}
