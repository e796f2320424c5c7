package middleware

import (
	"github.com/labstack/echo/v4"

	"pulse/pkg/api"
	apperrors "pulse/pkg/errors"
	"pulse/pkg/utils"
)

// RequireRoles lets a request through only when the authenticated role
// is in the allow list. Must run after Auth, which writes the role into
// the request context.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := utils.GetRoleFromCtx(c.Request().Context())
			if err != nil {
				return api.ErrorResponse(c, apperrors.ErrUnauthorized)
			}
			if _, ok := allowed[role]; !ok {
				return api.ErrorResponse(c, apperrors.ErrForbidden)
			}
			return next(c)
		}
	}
}
