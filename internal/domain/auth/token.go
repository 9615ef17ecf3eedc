// Package auth carries the backend-issued session token through request contexts.
package auth

import "context"

type tokenKey struct{}

// ContextWithToken returns a child context carrying the session token.
// An empty token leaves ctx unchanged.
func ContextWithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the session token stored in ctx, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(tokenKey{}).(string)
	return tok, ok && tok != ""
}
