// Package middleware provides shared request processing: bearer token
// authentication, role gating, response caching and rate limiting.
package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys set by JWTAuth and read by RequireRole and the handlers.
const (
	CtxUserID = "user_id"
	CtxRoles  = "roles"
)

// failJSON writes an error body in the same envelope shape the
// handlers use, so auth failures look like every other error.
func failJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{
		"success":   false,
		"message":   msg,
		"data":      nil,
		"errors":    []string{msg},
		"errorCode": status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"path":      c.Request().URL.Path,
	})
}

// JWTAuth validates a Bearer access token signed with HS256 and stores
// the subject and roles claims in the request context.  Handlers read
// them via c.Get(CtxUserID) (uint64) and c.Get(CtxRoles) ([]string).
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return failJSON(c, http.StatusUnauthorized, "token de acesso ausente")
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return failJSON(c, http.StatusUnauthorized, "token inválido ou expirado")
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return failJSON(c, http.StatusUnauthorized, "claims inválidas")
			}

			sub, ok := claims["sub"].(float64)
			if !ok || sub <= 0 {
				return failJSON(c, http.StatusUnauthorized, "claims inválidas")
			}
			// The roles claim round-trips through JSON as []interface{}.
			var roles []string
			if raw, ok := claims["roles"].([]interface{}); ok {
				for _, r := range raw {
					if s, ok := r.(string); ok {
						roles = append(roles, s)
					}
				}
			}

			c.Set(CtxUserID, uint64(sub))
			c.Set(CtxRoles, roles)
			return next(c)
		}
	}
}
