package identity

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/goliatone/go-errors"
)

// TokenService is the token lifecycle contract the transport layer
// consumes. Validation and extraction operations never return errors:
// any verification failure reads as invalid/absent.
type TokenService interface {
	GenerateToken(user *User) (string, error)
	GenerateRefreshToken() (string, error)
	ValidateToken(token string) bool
	GetPrincipalFromToken(token string) (*TokenClaims, bool)
	GetUserIDFromToken(token string) (int, bool)
	GetUserRoleFromToken(token string) (string, bool)
	GetTokenExpiration(token string) time.Time
}

// TokenServiceImpl implements TokenService on top of the strategy factory
type TokenServiceImpl struct {
	factory *TokenStrategyFactory
	logger  Logger
}

var _ TokenService = (*TokenServiceImpl)(nil)

// NewTokenService creates a TokenService backed by the given factory
func NewTokenService(factory *TokenStrategyFactory, logger Logger) *TokenServiceImpl {
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenServiceImpl{factory: factory, logger: logger}
}

// GenerateToken builds the claims set for the user and signs it. Signing
// failures are propagated; there is no degraded behavior for generation.
func (ts *TokenServiceImpl) GenerateToken(user *User) (string, error) {
	strategy, err := GenerationStrategy[*User, string](ts.factory)
	if err != nil {
		return "", err
	}

	token, err := strategy.GenerateToken(user)
	if err != nil {
		ts.logger.Error("GenerateToken signing failed for user %d: %v", user.ID, err)
		return "", err
	}

	ts.logger.Debug("GenerateToken issued token for user %d", user.ID)
	return token, nil
}

// GenerateRefreshToken returns a cryptographically random 32 byte value,
// base64 encoded. Refresh tokens are not persisted, validated, or linked
// to a user; the exchange flow is intentionally unfinished.
func (ts *TokenServiceImpl) GenerateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to generate refresh token")
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// ValidateToken reports whether signature, issuer, audience, and lifetime
// all satisfy the configured parameters.
func (ts *TokenServiceImpl) ValidateToken(token string) bool {
	valid := ts.factory.ValidationStrategy().ValidateToken(token)
	ts.logger.Debug("ValidateToken result %t", valid)
	return valid
}

// GetPrincipalFromToken re-validates the token and returns the decoded
// claims; the second return is false on any validation failure.
func (ts *TokenServiceImpl) GetPrincipalFromToken(token string) (*TokenClaims, bool) {
	claims, err := ts.factory.ValidationStrategy().GetPrincipalFromToken(token)
	if err != nil {
		ts.logger.Warn("GetPrincipalFromToken failed: %v", err)
		return nil, false
	}
	return claims, true
}

// GetUserIDFromToken extracts the numeric user id from the user_id claim,
// falling back to the registered subject.
func (ts *TokenServiceImpl) GetUserIDFromToken(token string) (int, bool) {
	claims, ok := ts.GetPrincipalFromToken(token)
	if !ok {
		return 0, false
	}

	id, ok := claims.UserID()
	if !ok {
		ts.logger.Warn("GetUserIDFromToken user id claim missing or unparsable")
		return 0, false
	}

	return id, true
}

// GetUserRoleFromToken extracts the role claim from the decoded principal
func (ts *TokenServiceImpl) GetUserRoleFromToken(token string) (string, bool) {
	claims, ok := ts.GetPrincipalFromToken(token)
	if !ok {
		return "", false
	}
	return claims.Role(), true
}

// GetTokenExpiration reads the token's stated expiration without full
// signature validation; the zero time signals an unreadable token.
func (ts *TokenServiceImpl) GetTokenExpiration(token string) time.Time {
	return ts.factory.ValidationStrategy().GetTokenExpiration(token)
}
