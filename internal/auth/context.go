package auth

import (
	"context"

	"medguides/internal/models"
)

type ctxKey string

const userKey ctxKey = "userClaims"

type Claims struct {
	Subject string
	Role    models.Role
	JWTID   string
}

func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, userKey, c)
}

func FromContext(ctx context.Context) Claims {
	if v, ok := ctx.Value(userKey).(Claims); ok {
		return v
	}
	return Claims{Role: models.RoleViewer}
}

// Subject returns the authenticated profile id, or "" outside a session.
func Subject(ctx context.Context) string {
	return FromContext(ctx).Subject
}
