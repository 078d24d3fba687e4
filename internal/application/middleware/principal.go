package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/auth"
)

const principalContextKey = "principal"

// SessionPrincipal resolves the acting principal from a Bearer token and
// stores it in the request context. Requests without a valid token simply
// stay anonymous; the authorization policy decides what anonymity may do.
func SessionPrincipal(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				if principal, err := auth.ParsePrincipal(token, jwtSecret); err == nil {
					c.Set(principalContextKey, principal)
				}
			}
			return next(c)
		}
	}
}

// PrincipalFrom returns the resolved principal or nil for anonymous requests.
func PrincipalFrom(c echo.Context) *auth.Principal {
	principal, _ := c.Get(principalContextKey).(*auth.Principal)
	return principal
}
