// Package auth carries the identity of the authenticated user.
//
// Identities are opaque strings. How a request is authenticated is decided by
// the caller; this package only transports the result.
package auth

import (
	"context"
	"errors"
	"strings"
)

// ErrUnauthenticated is returned by operations that need an authenticated user.
var ErrUnauthenticated = errors.New("unauthorized")

type userKey struct{}

// WithUser returns a copy of ctx carrying userID. An empty userID leaves ctx unauthenticated.
func WithUser(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, userKey{}, userID)
}

// UserFromContext returns the authenticated user of ctx.
func UserFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userKey{}).(string)
	return userID, ok && userID != ""
}

// TokenResolver resolves bearer tokens to user ids.
type TokenResolver struct {
	tokens map[string]string
}

// NewTokenResolver creates a TokenResolver from a token to user id table.
func NewTokenResolver(tokens map[string]string) *TokenResolver {
	copied := make(map[string]string, len(tokens))
	for token, userID := range tokens {
		if token == "" || userID == "" {
			continue
		}
		copied[token] = userID
	}
	return &TokenResolver{tokens: copied}
}

// Resolve returns the user of an Authorization header value.
func (r *TokenResolver) Resolve(authorization string) (string, bool) {
	token, ok := strings.CutPrefix(strings.TrimSpace(authorization), "Bearer ")
	if !ok {
		return "", false
	}
	userID, ok := r.tokens[strings.TrimSpace(token)]
	return userID, ok
}
