package authtoken

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type contextKey struct{}

// RevocationList reports whether a token id was explicitly signed out.
type RevocationList interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// FromRequest returns the bearer token from the Authorization header or,
// for WebSocket upgrades that cannot set headers, the token query parameter.
func FromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", ErrInvalidToken
		}
		return parts[1], nil
	}
	if token := r.URL.Query().Get("token"); token != "" {
		return token, nil
	}
	return "", ErrMissingToken
}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(contextKey{}).(*Claims)
	return claims, ok
}

// Authenticate resolves the request's token into claims, consulting the
// revocation list when one is configured.
func (m *Manager) Authenticate(r *http.Request, revoked RevocationList) (*Claims, error) {
	raw, err := FromRequest(r)
	if err != nil {
		return nil, err
	}
	claims, err := m.Validate(raw)
	if err != nil {
		return nil, err
	}
	if revoked != nil {
		isRevoked, err := revoked.IsRevoked(r.Context(), claims.TokenID)
		if err != nil {
			return nil, err
		}
		if isRevoked {
			return nil, ErrInvalidToken
		}
	}
	return claims, nil
}

func (m *Manager) Middleware(revoked RevocationList) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := m.Authenticate(r, revoked)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}
