package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"foodmarket/config"
	"foodmarket/internal/domain/constants"
	"foodmarket/internal/domain/entity"
	"foodmarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  5 * time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc := newTestJWTService(t)
	subject := service.TokenSubject{UserID: uuid.New(), AuthID: uuid.New(), Role: entity.RoleVendor}

	accessToken, refreshToken, err := svc.GenerateTokens(subject)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, subject.UserID, accessClaims.UserID)
	assert.Equal(t, subject.AuthID, accessClaims.AuthID)
	assert.Equal(t, entity.RoleVendor, accessClaims.Role)
	assert.Equal(t, constants.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, subject.UserID.String(), accessClaims.Subject)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, subject.UserID, refreshClaims.UserID)
	assert.Equal(t, constants.TokenTypeRefresh, refreshClaims.Type)
	assert.WithinDuration(t, time.Now().Add(time.Hour), refreshClaims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_ClaimNames(t *testing.T) {
	svc := newTestJWTService(t)
	subject := service.TokenSubject{UserID: uuid.New(), AuthID: uuid.New(), Role: entity.RoleCustomer}

	token, err := svc.GenerateAccessToken(subject)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var claims map[string]any
	require.NoError(t, json.Unmarshal(payload, &claims))
	assert.Equal(t, subject.UserID.String(), claims["sub"])
	assert.Equal(t, subject.AuthID.String(), claims["auth_id"])
	assert.Equal(t, string(entity.RoleCustomer), claims["role"])
	assert.Equal(t, constants.TokenTypeAccess, claims["type"])
	assert.NotContains(t, claims, "uid")
	assert.NotContains(t, claims, "aid")
}

func TestJWTService_RejectsTokenOfWrongType(t *testing.T) {
	svc := newTestJWTService(t)
	subject := service.TokenSubject{UserID: uuid.New(), AuthID: uuid.New(), Role: entity.RoleCustomer}

	accessToken, refreshToken, err := svc.GenerateTokens(subject)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t)

	claims, err := svc.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	issued := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateAccessToken(service.TokenSubject{UserID: uuid.New(), Role: entity.RoleVendor})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_TokenSignedWithOtherSecret(t *testing.T) {
	svc := newTestJWTService(t)
	otherCfg := newTestConfig()
	otherCfg.SecretKey.Access = "another_access_secret_of_reasonable_length"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.GenerateAccessToken(service.TokenSubject{UserID: uuid.New(), Role: entity.RoleVendor})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RequiresValidSubject(t *testing.T) {
	svc := newTestJWTService(t)

	_, _, err := svc.GenerateTokens(service.TokenSubject{UserID: uuid.New(), Role: entity.Role("admin")})
	assert.Error(t, err)

	_, _, err = svc.GenerateTokens(service.TokenSubject{Role: entity.RoleVendor})
	assert.Error(t, err)
}

func TestJWTService_HashToken(t *testing.T) {
	svc := newTestJWTService(t)

	hash := svc.HashToken("token")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, svc.HashToken("token"))
	assert.NotEqual(t, hash, svc.HashToken("other"))
}

func TestNewJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestNewJWTService_DefaultTTL(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth = nil
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, defaultRefreshTTL, svc.GetRefreshTokenDuration())
}
