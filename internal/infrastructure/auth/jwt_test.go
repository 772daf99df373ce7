package auth

import (
	"testing"
	"time"

	"github.com/myvegiz/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration:  480 * time.Minute,
		RefreshTokenExpiration: 168 * time.Hour,
		Issuer:                 "myvegiz-test",
	})
}

func TestJWTService_GenerateTokenPair(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID:  42,
		Email:   "admin@example.com",
		IsAdmin: true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID:  42,
		Email:   "admin@example.com",
		IsAdmin: true,
	})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestJWTService_RejectsRefreshTokenAsAccess(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := testJWTService()
	other := NewJWTService(config.JWTConfig{
		Secret:                 "a-different-secret-entirely-here",
		AccessTokenExpiration:  time.Hour,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "myvegiz-test",
	})

	pair, err := other.GenerateTokenPair(GenerateTokenInput{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration:  -time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "myvegiz-test",
	})

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestClaims_GetRemainingTTL(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: 42})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	ttl := claims.GetRemainingTTL()
	assert.Greater(t, ttl, 479*time.Minute)
	assert.LessOrEqual(t, ttl, 480*time.Minute)
}
