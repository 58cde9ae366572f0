package service

import (
	"time"

	"foodmarket/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
// UserID is the vendor or customer ID. It travels as the registered "sub" claim and is
// filled back in when a token is validated.
type Claims struct {
	UserID uuid.UUID   `json:"-"`
	AuthID uuid.UUID   `json:"auth_id"`
	Role   entity.Role `json:"role"`
	Type   string      `json:"type"`
	jwt.RegisteredClaims
}

// TokenSubject identifies who a token pair is issued for.
type TokenSubject struct {
	UserID uuid.UUID
	AuthID uuid.UUID
	Role   entity.Role
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a subject.
	GenerateTokens(subject TokenSubject) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken creates only an access token, used when refreshing a session.
	GenerateAccessToken(subject TokenSubject) (string, error)

	// ValidateAccessToken checks signature, expiry and type of an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks signature, expiry and type of a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the storage hash of a raw token.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
