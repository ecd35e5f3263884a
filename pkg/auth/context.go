package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey struct{}

// WithClaims stores validated token claims in ctx.
func WithClaims(ctx context.Context, claims jwt.MapClaims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// ClaimsFromContext retrieves the claims stored by WithClaims.
func ClaimsFromContext(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(contextKey{}).(jwt.MapClaims)
	return claims, ok
}

// SubjectFromContext returns the sub claim of the authenticated caller, or "".
func SubjectFromContext(ctx context.Context) string {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return ""
	}
	sub, _ := claims.GetSubject()
	return sub
}
