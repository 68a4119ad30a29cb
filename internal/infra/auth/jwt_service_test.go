package auth

import (
	"testing"
	"time"

	"bookstore/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, time.Hour))
	require.NoError(t, err)

	userID := "62c234567890123456789012"
	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, 0))
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	assert.Equal(t, DefaultTokenTTL, impl.ttl)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, time.Minute))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issuedAt := time.Now().Add(-time.Hour)
	impl.now = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken("62c234567890123456789012")
	require.NoError(t, err)

	impl.now = time.Now
	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, time.Hour))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("another_secret_used_by_someone_else", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig(testSecret, time.Hour))
	require.NoError(t, err)

	token, err := issuer.GenerateToken("62c234567890123456789012")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, time.Hour))
	require.NoError(t, err)

	claims := jwt.MapClaims{"id": "62c234567890123456789012", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_MissingUserID(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, time.Hour))
	require.NoError(t, err)

	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
