package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// SignToken issues a session JWT for the given user.
func SignToken(user *entity.User, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: user.Email,
		Roles: user.Roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParsePrincipal validates a session JWT and resolves the Principal it
// carries. Invalid or expired tokens yield model.ErrUnauthorized.
func ParsePrincipal(tokenString, secret string) (*Principal, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid session token", model.ErrUnauthorized)
	}

	var userID uint
	if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil {
		return nil, fmt.Errorf("%w: malformed subject", model.ErrUnauthorized)
	}

	return &Principal{
		UserID: userID,
		Email:  claims.Email,
		Roles:  entity.RoleList(claims.Roles),
	}, nil
}
