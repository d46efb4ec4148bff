package jwt

import (
	"testing"
	"time"

	"hospital-admin-platform/config"
	"hospital-admin-platform/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newTestService()
	userID := uuid.New()

	token, tokenID, err := s.GenerateAccessToken(userID, entity.RoleDoctor)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, tokenID)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleDoctor, claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	s := newTestService()

	token, _, err := s.GenerateRefreshToken(uuid.New(), entity.RolePatient)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	s := newTestService()
	token, _, err := s.GenerateAccessToken(uuid.New(), entity.RolePatient)
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessExpiry: time.Minute})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	s := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: -time.Minute})
	token, _, err := s.GenerateAccessToken(uuid.New(), entity.RolePatient)
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	s := newTestService()
	_, err := s.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	s := newTestService()
	userID := uuid.New()

	_, firstID, err := s.GenerateAccessToken(userID, entity.RolePatient)
	require.NoError(t, err)
	_, secondID, err := s.GenerateAccessToken(userID, entity.RolePatient)
	require.NoError(t, err)

	assert.NotEqual(t, firstID, secondID)
}
