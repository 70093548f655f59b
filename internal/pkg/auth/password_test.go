package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
)

func passwordManager() *PasswordManager {
	return NewPasswordManager(&config.Config{
		Security: config.SecurityConfig{BcryptCost: 4},
	})
}

func TestHashAndVerifyPassword(t *testing.T) {
	pm := passwordManager()

	hash, err := pm.HashPassword("Secret@123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret@123", hash)

	assert.NoError(t, pm.VerifyPassword("Secret@123", hash))
	assert.Error(t, pm.VerifyPassword("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	pm := passwordManager()

	assert.NoError(t, pm.ValidatePassword("Secret@123"))

	assert.Error(t, pm.ValidatePassword("Sh@1"), "too short")
	assert.Error(t, pm.ValidatePassword(strings.Repeat("Aa1@", 40)), "too long")
	assert.Error(t, pm.ValidatePassword("secret@123"), "no uppercase")
	assert.Error(t, pm.ValidatePassword("SECRET@123"), "no lowercase")
	assert.Error(t, pm.ValidatePassword("Secret@abc"), "no digit")
	assert.Error(t, pm.ValidatePassword("Secret1234"), "no special character")
}
