package auth

import (
	"testing"
	"time"

	"uniform/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	studentID := uuid.New()
	roles := []string{"student"}

	token, err := jwtService.GenerateToken(studentID, roles, 15*time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, roles, claims.Roles)

	gotID, err := claims.StudentID()
	require.NoError(t, err)
	assert.Equal(t, studentID, gotID)
}

func TestJWTService_ValidateToken_Rejects(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	other, err := NewJWTService(newTestConfig("another_secret_key_that_does_not_match"))
	require.NoError(t, err)
	foreign, err := other.GenerateToken(uuid.New(), []string{"admin"}, time.Minute)
	require.NoError(t, err)

	expired, err := jwtService.GenerateToken(uuid.New(), []string{"student"}, -time.Minute)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
		{name: "missing exp", token: noExpiry},
		{name: "subject not uuid", token: badSubject},
		{name: "unexpected algorithm", token: hs512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
