package identity

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// TokenConfig is the concrete Config used by the composition root
type TokenConfig struct {
	SigningKey      string
	TokenExpiration int
	Issuer          string
	Audience        []string
}

var _ Config = (*TokenConfig)(nil)

// GetSigningKey returns the symmetric signing secret
func (c *TokenConfig) GetSigningKey() string {
	return c.SigningKey
}

// GetTokenExpiration returns the token lifetime in minutes
func (c *TokenConfig) GetTokenExpiration() int {
	return c.TokenExpiration
}

// GetIssuer returns the configured issuer claim
func (c *TokenConfig) GetIssuer() string {
	return c.Issuer
}

// GetAudience returns the configured audience claims
func (c *TokenConfig) GetAudience() []string {
	return c.Audience
}

// LoadConfig reads token options from the environment, loading a .env file
// first if one is present. Best-effort: a missing .env falls through to
// the real environment and defaults.
func LoadConfig() *TokenConfig {
	_ = godotenv.Load()

	cfg := &TokenConfig{
		SigningKey:      os.Getenv("IDENTITY_SIGNING_KEY"),
		TokenExpiration: 60,
		Issuer:          os.Getenv("IDENTITY_ISSUER"),
	}

	if raw := os.Getenv("IDENTITY_TOKEN_EXPIRATION_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil {
			cfg.TokenExpiration = minutes
		}
	}

	if raw := os.Getenv("IDENTITY_AUDIENCE"); raw != "" {
		for _, aud := range strings.Split(raw, ",") {
			if aud = strings.TrimSpace(aud); aud != "" {
				cfg.Audience = append(cfg.Audience, aud)
			}
		}
	}

	return cfg
}
