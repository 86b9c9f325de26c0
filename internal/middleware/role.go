package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole allows the request through when the authenticated user
// holds at least one of the given roles.  It assumes JWTAuth already
// stored the roles slice in the context; a missing or empty slice is
// treated as no roles and rejected with 403.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held, _ := c.Get(CtxRoles).([]string)
			for _, r := range held {
				if allowed[r] {
					return next(c)
				}
			}
			return failJSON(c, http.StatusForbidden, "permissão insuficiente")
		}
	}
}
