package auth

import (
	"context"
	"strings"
)

type ctxKey string

const claimsKey ctxKey = "authClaims"

// Claims is the authenticated principal for the lifetime of one request.
// Scopes are the token's scope entries (role names without ROLE_).
type Claims struct {
	Subject string
	Scopes  []string
}

func (c Claims) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// HasRole reverses the scope-claim stripping: role ROLE_X matches scope X.
func (c Claims) HasRole(role string) bool {
	return c.HasScope(strings.TrimPrefix(role, "ROLE_"))
}

func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func FromContext(ctx context.Context) Claims {
	if v, ok := ctx.Value(claimsKey).(Claims); ok {
		return v
	}
	return Claims{}
}

// Subject returns the authenticated username, or "" when unauthenticated.
func Subject(ctx context.Context) string {
	return FromContext(ctx).Subject
}
