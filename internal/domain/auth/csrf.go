package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"todo-api/internal/domain/model"
)

// TokenManager issues and validates CSRF tokens scoped to a single entity
// instance. The token is an HMAC over the intention string
// "{operation}_{kind}_{id}", so a token issued for deleting todo 7 never
// validates for any other entity or operation.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret []byte) *TokenManager {
	return &TokenManager{secret: secret}
}

// DeleteToken returns the token guarding deletion of the given entity instance.
func (m *TokenManager) DeleteToken(kind EntityKind, id uint) string {
	return m.token(OpDelete, kind, id)
}

// ValidateDelete checks token against the delete intention for the given
// entity instance. A mismatch or empty token yields model.ErrCsrfRejected.
func (m *TokenManager) ValidateDelete(kind EntityKind, id uint, token string) error {
	expected := m.token(OpDelete, kind, id)
	if token == "" || !hmac.Equal([]byte(expected), []byte(token)) {
		return fmt.Errorf("%w: %s_%s_%d", model.ErrCsrfRejected, OpDelete, kind, id)
	}
	return nil
}

func (m *TokenManager) token(op Operation, kind EntityKind, id uint) string {
	intention := fmt.Sprintf("%s_%s_%d", op, kind, id)
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(intention))
	return hex.EncodeToString(mac.Sum(nil))
}
