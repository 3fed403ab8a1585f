package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenTTL is how long an admin session token stays valid.
	TokenTTL = 12 * time.Hour

	// Issuer is stamped on every session token and required on validation.
	Issuer = "cyclebees-estimates"
)

// ErrInvalidToken wraps every validation failure. The underlying jwt error
// is kept so callers can still test for jwt.ErrTokenExpired.
var ErrInvalidToken = errors.New("invalid session token")

// Claims identify the signed-in admin.
type Claims struct {
	AdminID  uuid.UUID `json:"admin_id"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 session token for the admin.
func GenerateToken(secret string, adminID uuid.UUID, username string) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	claims := Claims{
		AdminID:  adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   adminID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ValidateToken parses tokenStr and checks its signature, issuer and expiry.
func ValidateToken(secret, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims,
		func(*jwt.Token) (interface{}, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.AdminID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing admin id", ErrInvalidToken)
	}
	return claims, nil
}
