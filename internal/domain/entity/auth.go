// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Authentication is the credential record (email + password hash) of exactly one Vendor or Customer.
type Authentication struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken represents a long-lived session of an Authentication.
// It is used to obtain a new access token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID
	AuthID    uuid.UUID
	TokenHash string // SHA-256 of the raw token
	ExpiresAt time.Time
	CreatedAt time.Time
}
