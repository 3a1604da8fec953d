package identity_test

import (
	"testing"

	"github.com/goliatone/go-identity"
	"github.com/stretchr/testify/assert"
)

func TestTokenConfig(t *testing.T) {
	cfg := &identity.TokenConfig{
		SigningKey:      "super-secret",
		TokenExpiration: 15,
		Issuer:          "issuer",
		Audience:        []string{"api", "web"},
	}

	assert.Equal(t, "super-secret", cfg.GetSigningKey())
	assert.Equal(t, 15, cfg.GetTokenExpiration())
	assert.Equal(t, "issuer", cfg.GetIssuer())
	assert.Equal(t, []string{"api", "web"}, cfg.GetAudience())
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("IDENTITY_SIGNING_KEY", "env-key")
		t.Setenv("IDENTITY_TOKEN_EXPIRATION_MINUTES", "90")
		t.Setenv("IDENTITY_ISSUER", "env-issuer")
		t.Setenv("IDENTITY_AUDIENCE", "api, web,")

		cfg := identity.LoadConfig()
		assert.Equal(t, "env-key", cfg.GetSigningKey())
		assert.Equal(t, 90, cfg.GetTokenExpiration())
		assert.Equal(t, "env-issuer", cfg.GetIssuer())
		assert.Equal(t, []string{"api", "web"}, cfg.GetAudience())
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		t.Setenv("IDENTITY_SIGNING_KEY", "")
		t.Setenv("IDENTITY_TOKEN_EXPIRATION_MINUTES", "not-a-number")
		t.Setenv("IDENTITY_ISSUER", "")
		t.Setenv("IDENTITY_AUDIENCE", "")

		cfg := identity.LoadConfig()
		assert.Equal(t, 60, cfg.GetTokenExpiration())
		assert.Empty(t, cfg.GetIssuer())
		assert.Nil(t, cfg.GetAudience())
	})
}
