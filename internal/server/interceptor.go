package server

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/langdrill/internal/auth"
)

// NewAuthInterceptor puts the user of the bearer token into the request context.
// Requests without an Authorization header continue as anonymous, and
// unknown tokens are rejected.
func NewAuthInterceptor(resolver *auth.TokenResolver) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient {
				return next(ctx, req)
			}

			authorization := req.Header().Get("Authorization")
			if authorization == "" {
				return next(ctx, req)
			}
			userID, ok := resolver.Resolve(authorization)
			if !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("invalid token"))
			}
			return next(auth.WithUser(ctx, userID), req)
		}
	}
}

// NewBearerTokenInterceptor sets the Authorization header on client requests.
func NewBearerTokenInterceptor(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}
