package handlers

import (
	"context"
	"net/http"
	"strings"

	"alexportfolio/auth"
	"alexportfolio/models"
)

type contextKey string

const claimsContextKey contextKey = "authClaims"

// ClaimsFromContext returns the claims injected by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims, ok
}

// bearerClaims extracts and verifies the Authorization header.
func bearerClaims(r *http.Request, tokens *auth.TokenManager) (*auth.Claims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, auth.ErrInvalidToken
	}
	return tokens.Verify(strings.TrimPrefix(header, "Bearer "))
}

// RequireAuth halts the request with 401 unless a valid bearer token is
// presented; the decoded claims are placed on the request context.
func RequireAuth(tokens *auth.TokenManager, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := bearerClaims(r, tokens)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin halts an already-authenticated request with 403 unless the
// caller's role is admin.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Role != models.RoleAdmin {
			writeError(w, http.StatusForbidden, "admin only")
			return
		}
		next(w, r)
	}
}
