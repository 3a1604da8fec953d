package identity

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claims set embedded in every issued token. The
// registered subject duplicates the user id; user_id, first_name, and
// last_name are carried as convenience lookups for callers that do not
// parse registered claims.
type TokenClaims struct {
	jwt.RegisteredClaims
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	UserRole  string `json:"role,omitempty"`
	UID       string `json:"user_id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// NewTokenClaims builds the claims set for a user. Claims are produced
// fresh on every token generation and never mutated after creation.
func NewTokenClaims(user *User) *TokenClaims {
	id := strconv.Itoa(user.ID)
	return &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: id,
		},
		Name:      user.FullName(),
		Email:     user.Email,
		UserRole:  user.Role,
		UID:       id,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

// Subject returns the subject claim
func (c *TokenClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the numeric user id, reading the user_id claim and
// falling back to the registered subject. The second return is false when
// neither claim holds a parsable id.
func (c *TokenClaims) UserID() (int, bool) {
	for _, raw := range []string{c.UID, c.RegisteredClaims.Subject} {
		if raw == "" {
			continue
		}
		if id, err := strconv.Atoi(raw); err == nil {
			return id, true
		}
	}
	return 0, false
}

// Role returns the role claim
func (c *TokenClaims) Role() string {
	return c.UserRole
}

// Expires returns the expiration time
func (c *TokenClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *TokenClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
