package identity_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-identity"
	"github.com/stretchr/testify/assert"
)

func TestNewTokenService(t *testing.T) {
	factory := identity.NewTokenStrategyFactory(testConfig(), nil)

	t.Run("creates token service with logger", func(t *testing.T) {
		service := identity.NewTokenService(factory, testLogger{})
		assert.NotNil(t, service)
	})

	t.Run("creates token service with nil logger", func(t *testing.T) {
		service := identity.NewTokenService(factory, nil)
		assert.NotNil(t, service)
	})
}

func TestTokenService_GenerateToken(t *testing.T) {
	cfg := testConfig()
	service := newTokenService(cfg)

	t.Run("generates valid signed token", func(t *testing.T) {
		user := testUser(7, "ada@example.com")
		user.Role = identity.RoleAdmin

		tokenString, err := service.GenerateToken(user)

		assert.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		// Parse the token to verify structure
		token, err := jwt.ParseWithClaims(tokenString, &identity.TokenClaims{}, func(token *jwt.Token) (any, error) {
			return []byte(cfg.SigningKey), nil
		})

		assert.NoError(t, err)
		assert.True(t, token.Valid)

		claims, ok := token.Claims.(*identity.TokenClaims)
		assert.True(t, ok)
		assert.Equal(t, "7", claims.Subject())
		assert.Equal(t, "7", claims.UID)
		assert.Equal(t, "Ada Lovelace", claims.Name)
		assert.Equal(t, "ada@example.com", claims.Email)
		assert.Equal(t, identity.RoleAdmin, claims.Role())
		assert.Equal(t, "Ada", claims.FirstName)
		assert.Equal(t, "Lovelace", claims.LastName)
		assert.Equal(t, cfg.Issuer, claims.RegisteredClaims.Issuer)
		assert.Equal(t, jwt.ClaimStrings(cfg.Audience), claims.RegisteredClaims.Audience)
		assert.NotEmpty(t, claims.RegisteredClaims.ID)
		assert.NotNil(t, claims.RegisteredClaims.IssuedAt)
		assert.NotNil(t, claims.RegisteredClaims.ExpiresAt)
	})

	t.Run("sets expiration from configured minutes", func(t *testing.T) {
		before := time.Now()
		tokenString, err := service.GenerateToken(testUser(1, "a@x.com"))
		after := time.Now()

		assert.NoError(t, err)

		expires := service.GetTokenExpiration(tokenString)
		ttl := time.Duration(cfg.TokenExpiration) * time.Minute

		assert.True(t, expires.After(before.Add(ttl-time.Second)))
		assert.True(t, expires.Before(after.Add(ttl+time.Second)))
	})

	t.Run("each token carries a fresh claims set", func(t *testing.T) {
		user := testUser(2, "b@x.com")

		first, err := service.GenerateToken(user)
		assert.NoError(t, err)
		second, err := service.GenerateToken(user)
		assert.NoError(t, err)

		// jti and iat differ between generations
		assert.NotEqual(t, first, second)
	})
}

func TestTokenService_RoundTrip(t *testing.T) {
	service := newTokenService(testConfig())

	user := testUser(42, "round@trip.dev")
	user.Role = "Admin"

	tokenString, err := service.GenerateToken(user)
	assert.NoError(t, err)

	id, ok := service.GetUserIDFromToken(tokenString)
	assert.True(t, ok)
	assert.Equal(t, user.ID, id)

	role, ok := service.GetUserRoleFromToken(tokenString)
	assert.True(t, ok)
	assert.Equal(t, user.Role, role)
}

func TestTokenService_ValidateToken(t *testing.T) {
	cfg := testConfig()
	service := newTokenService(cfg)

	t.Run("accepts a freshly issued token", func(t *testing.T) {
		tokenString, err := service.GenerateToken(testUser(1, "a@x.com"))
		assert.NoError(t, err)
		assert.True(t, service.ValidateToken(tokenString))
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		assert.False(t, service.ValidateToken("not-a-token"))
		assert.False(t, service.ValidateToken(""))
	})

	t.Run("rejects a tampered signature", func(t *testing.T) {
		tokenString, err := service.GenerateToken(testUser(1, "a@x.com"))
		assert.NoError(t, err)

		parts := strings.Split(tokenString, ".")
		assert.Len(t, parts, 3)

		sig := []byte(parts[2])
		sig[0] ^= 0x01
		tampered := parts[0] + "." + parts[1] + "." + string(sig)

		assert.False(t, service.ValidateToken(tampered))

		claims, ok := service.GetPrincipalFromToken(tampered)
		assert.False(t, ok)
		assert.Nil(t, claims)
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		other := testConfig()
		other.SigningKey = "another-signing-key"

		tokenString, err := newTokenService(other).GenerateToken(testUser(1, "a@x.com"))
		assert.NoError(t, err)

		assert.False(t, service.ValidateToken(tokenString))
	})

	t.Run("rejects a token for another issuer", func(t *testing.T) {
		other := testConfig()
		other.Issuer = "someone-else"

		tokenString, err := newTokenService(other).GenerateToken(testUser(1, "a@x.com"))
		assert.NoError(t, err)

		assert.False(t, service.ValidateToken(tokenString))
	})

	t.Run("rejects a token for another audience", func(t *testing.T) {
		other := testConfig()
		other.Audience = []string{"other-audience"}

		tokenString, err := newTokenService(other).GenerateToken(testUser(1, "a@x.com"))
		assert.NoError(t, err)

		assert.False(t, service.ValidateToken(tokenString))
	})

	t.Run("rejects unsigned tokens", func(t *testing.T) {
		claims := identity.NewTokenClaims(testUser(1, "a@x.com"))
		token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
		unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		assert.False(t, service.ValidateToken(unsigned))
	})
}

func TestTokenService_Expiration(t *testing.T) {
	t.Run("expired token fails validation but reports its expiry", func(t *testing.T) {
		cfg := testConfig()
		cfg.TokenExpiration = 0

		service := newTokenService(cfg)

		tokenString, err := service.GenerateToken(testUser(1, "a@x.com"))
		assert.NoError(t, err)

		assert.False(t, service.ValidateToken(tokenString))

		expires := service.GetTokenExpiration(tokenString)
		assert.False(t, expires.IsZero())
		assert.False(t, expires.After(time.Now()))
	})

	t.Run("unreadable token reports the zero time", func(t *testing.T) {
		service := newTokenService(testConfig())
		assert.True(t, service.GetTokenExpiration("garbage").IsZero())
	})
}

func TestTokenService_GenerateRefreshToken(t *testing.T) {
	service := newTokenService(testConfig())

	first, err := service.GenerateRefreshToken()
	assert.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(first)
	assert.NoError(t, err)
	assert.Len(t, raw, 32)

	second, err := service.GenerateRefreshToken()
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestTokenService_ClaimExtraction(t *testing.T) {
	service := newTokenService(testConfig())

	t.Run("extraction helpers report absent on invalid tokens", func(t *testing.T) {
		_, ok := service.GetUserIDFromToken("garbage")
		assert.False(t, ok)

		_, ok = service.GetUserRoleFromToken("garbage")
		assert.False(t, ok)

		_, ok = service.GetPrincipalFromToken("garbage")
		assert.False(t, ok)
	})

	t.Run("principal exposes the full claims set", func(t *testing.T) {
		user := testUser(9, "claims@x.com")

		tokenString, err := service.GenerateToken(user)
		assert.NoError(t, err)

		claims, ok := service.GetPrincipalFromToken(tokenString)
		assert.True(t, ok)
		assert.Equal(t, "claims@x.com", claims.Email)
		assert.Equal(t, "Ada", claims.FirstName)
		assert.Equal(t, "Lovelace", claims.LastName)

		id, ok := claims.UserID()
		assert.True(t, ok)
		assert.Equal(t, 9, id)
	})
}
