package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/pkg/contextkeys"
)

func invokeWithRole(t *testing.T, role string, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if role != "" {
		ctx := context.WithValue(req.Context(), contextkeys.RoleKey, role)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireRoles(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	rec := invokeWithRole(t, "hr", "admin", "hr")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesRejectsUnlistedRole(t *testing.T) {
	rec := invokeWithRole(t, "agent", "admin", "hr")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRolesRejectsMissingRole(t *testing.T) {
	rec := invokeWithRole(t, "", "admin")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
