package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "storefront"},
		JWT: config.JWTConfig{
			Secret:             "test-secret-key-that-is-long-enough",
			AccessTokenExpiry:  15 * time.Minute,
			RefreshTokenExpiry: 7 * 24 * time.Hour,
		},
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testConfig())

	token, err := m.GenerateAccessToken("u1", "asha@example.com", true)
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "access", claims.TokenType)
}

func TestRefreshTokenOmitsAdminFlag(t *testing.T) {
	m := NewJWTManager(testConfig())

	token, err := m.GenerateRefreshToken("u1", "asha@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestTokenTypeMismatchRejected(t *testing.T) {
	m := NewJWTManager(testConfig())

	access, err := m.GenerateAccessToken("u1", "asha@example.com", false)
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken("u1", "asha@example.com")
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)
	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	m := NewJWTManager(testConfig())

	token, err := m.GenerateAccessToken("u1", "asha@example.com", false)
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token + "x")
	assert.Error(t, err)

	other := NewJWTManager(&config.Config{
		App: config.AppConfig{Name: "storefront"},
		JWT: config.JWTConfig{Secret: "a-different-secret", AccessTokenExpiry: time.Minute},
	})
	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", ExtractTokenFromHeader("Bearer abc"))
	assert.Empty(t, ExtractTokenFromHeader("abc"))
	assert.Empty(t, ExtractTokenFromHeader(""))
	assert.Empty(t, ExtractTokenFromHeader("Bearer "))
}
