package auth

import (
	"testing"

	"foodmarket/config"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strengthDetails(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := errors.AsType[*domainerrors.BaseError](err)
	require.True(t, ok, "expected a domain error, got %v", err)
	assert.Equal(t, "PASSWORD_STRENGTH", appErr.ErrorCode())

	return appErr.Details()
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPass123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)

	for _, password := range []string{"StrongPass123!", "MySecure1Pass", "Pässphräse123"} {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password string
		expected string
	}{
		{"", "must be at least 8 characters long"},
		{"Ab1", "must be at least 8 characters long"},
		{"PASSWORD123!", "must contain at least one lowercase letter"},
		{"strongpass123", "must contain at least one uppercase letter"},
		{"StrongPassABC", "must contain at least one number"},
		{"MyPassword123", "contains forbidden words"},
		{"SuperAdmin123", "contains forbidden words"},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			require.Error(t, err)
			assert.Contains(t, strengthDetails(t, err), tc.expected)
		})
	}
}

func TestBcryptHasher_RejectsPasswordsLongerThanBcryptLimit(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)

	long := "Aa1" + string(make([]byte, 80))
	err := hasher.ValidatePasswordStrength(long)
	require.Error(t, err)
	assert.Contains(t, strengthDetails(t, err), "at most 72 bytes")
}

func TestNewBcryptHasher_UsesConfig(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 5},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:      10,
			RequireSpecial: true,
		},
	}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("anything")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)

	err = hasher.ValidatePasswordStrength("short")
	require.Error(t, err)
	assert.Contains(t, strengthDetails(t, err), "at least 10 characters")

	err = hasher.ValidatePasswordStrength("longenoughvalue")
	require.Error(t, err)
	assert.Contains(t, strengthDetails(t, err), "special character")

	assert.NoError(t, hasher.ValidatePasswordStrength("long-enough-value"))
}

func TestNewBcryptHasher_IgnoresOutOfRangeCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}})

	assert.Equal(t, bcrypt.DefaultCost, hasher.(*bcryptHasher).cost)
}

func TestContainsForbiddenWords(t *testing.T) {
	words := []string{"password", "admin"}
	assert.True(t, containsForbiddenWords("MyPassword123", words))
	assert.True(t, containsForbiddenWords("AdminUser", words))
	assert.False(t, containsForbiddenWords("SecurePass123", words))
}
