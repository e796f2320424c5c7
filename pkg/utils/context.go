package utils

import (
	"context"

	"pulse/pkg/contextkeys"
	apperrors "pulse/pkg/errors"
)

// GetUserIDFromCtx pulls the authenticated user's id out of the request
// context. The auth middleware is the only writer of this key.
func GetUserIDFromCtx(ctx context.Context) (string, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(string)
	if !ok || id == "" {
		return "", apperrors.ErrUserIDNotFoundInContext
	}
	return id, nil
}

// GetRoleFromCtx pulls the authenticated user's role out of the request
// context.
func GetRoleFromCtx(ctx context.Context) (string, error) {
	role, ok := ctx.Value(contextkeys.RoleKey).(string)
	if !ok || role == "" {
		return "", apperrors.ErrUserIDNotFoundInContext
	}
	return role, nil
}
