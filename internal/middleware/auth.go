package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/cyclebees/estimates-api/internal/auth"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey struct{}

var (
	errNoCredentials = errors.New("missing authorization header")
	errBadScheme     = errors.New("authorization must use the Bearer scheme")
)

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func BearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", errNoCredentials
	}
	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || token == "" || !strings.EqualFold(scheme, "bearer") {
		return "", errBadScheme
	}
	return token, nil
}

// Authenticate guards the staff API. Requests without a valid admin session
// token get 401 and never reach next; valid claims are stored in the context.
func Authenticate(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := BearerToken(r)
			if err != nil {
				unauthorized(w, err.Error())
				return
			}

			claims, err := auth.ValidateToken(jwtSecret, token)
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				unauthorized(w, "session expired")
				return
			case err != nil:
				unauthorized(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// WithClaims returns a copy of ctx carrying the admin's session claims.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// ClaimsFromContext returns the claims stored by Authenticate, or nil on
// public routes.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(contextKey{}).(*auth.Claims)
	return claims
}

// AdminUsername is the username of the authenticated admin, or fallback when
// the request carries no claims.
func AdminUsername(ctx context.Context, fallback string) string {
	if claims := ClaimsFromContext(ctx); claims != nil && claims.Username != "" {
		return claims.Username
	}
	return fallback
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="cyclebees"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		log.Printf("ERROR: encode unauthorized response: %v", err)
	}
}
