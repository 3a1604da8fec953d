package identity

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// TokenGenerationStrategy encodes a subject of type TUser into a signed
// token of type TToken.
type TokenGenerationStrategy[TUser, TToken any] interface {
	GenerateToken(user TUser) (TToken, error)
}

// TokenValidationStrategy decodes and verifies presented tokens
type TokenValidationStrategy interface {
	ValidateToken(token string) bool
	GetPrincipalFromToken(token string) (*TokenClaims, error)
	GetTokenExpiration(token string) time.Time
}

// TokenExtractionStrategy pulls a raw token out of a transport artifact
// such as an Authorization header.
type TokenExtractionStrategy interface {
	ExtractToken(authorizationHeader string) (string, error)
}

// TokenStrategyFactory selects token strategies for the configured signing
// scheme. Today it produces the JWT/HS256 family; the selection points
// exist so alternative schemes can be added without changing callers.
type TokenStrategyFactory struct {
	cfg    Config
	logger Logger
}

// NewTokenStrategyFactory creates a strategy factory for the given config
func NewTokenStrategyFactory(cfg Config, logger Logger) *TokenStrategyFactory {
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenStrategyFactory{cfg: cfg, logger: logger}
}

// GenerationStrategy selects a generation strategy for the requested
// user/token type pair. Only *User -> string is recognized; any other pair
// returns ErrStrategyNotSupported so callers can branch without recovering
// from a panic.
func GenerationStrategy[TUser, TToken any](f *TokenStrategyFactory) (TokenGenerationStrategy[TUser, TToken], error) {
	strategy := &jwtGenerationStrategy{cfg: f.cfg}
	if typed, ok := any(strategy).(TokenGenerationStrategy[TUser, TToken]); ok {
		return typed, nil
	}

	f.logger.Warn("GenerationStrategy unsupported type pair %T -> %T", *new(TUser), *new(TToken))
	return nil, ErrStrategyNotSupported
}

// ValidationStrategy returns the validation strategy for the configured
// signing scheme.
func (f *TokenStrategyFactory) ValidationStrategy() TokenValidationStrategy {
	return &jwtValidationStrategy{cfg: f.cfg, logger: f.logger}
}

// ExtractionStrategy returns the bearer-scheme extraction strategy
func (f *TokenStrategyFactory) ExtractionStrategy() TokenExtractionStrategy {
	return bearerTokenExtraction{}
}

type jwtGenerationStrategy struct {
	cfg Config
}

var _ TokenGenerationStrategy[*User, string] = (*jwtGenerationStrategy)(nil)

// GenerateToken signs a fresh claims set for the user with HS256.
// Expiration is now plus the configured minutes; issuer and audience come
// from configuration.
func (s *jwtGenerationStrategy) GenerateToken(user *User) (string, error) {
	now := time.Now()

	claims := NewTokenClaims(user)
	claims.RegisteredClaims.Issuer = s.cfg.GetIssuer()
	claims.RegisteredClaims.Audience = audienceClaim(s.cfg)
	claims.RegisteredClaims.IssuedAt = jwt.NewNumericDate(now)
	claims.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(now.Add(time.Duration(s.cfg.GetTokenExpiration()) * time.Minute))

	ensureTokenID(&claims.RegisteredClaims)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.cfg.GetSigningKey()))
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign token").
			WithTextCode(TextCodeTokenSigningFailed)
	}

	return signed, nil
}

type jwtValidationStrategy struct {
	cfg    Config
	logger Logger
}

var _ TokenValidationStrategy = (*jwtValidationStrategy)(nil)

// ValidateToken reports whether signature, issuer, audience, and lifetime
// all hold. Any parse or verification failure means invalid, never an
// error to the caller.
func (s *jwtValidationStrategy) ValidateToken(token string) bool {
	_, err := s.GetPrincipalFromToken(token)
	return err == nil
}

// GetPrincipalFromToken parses and fully verifies the token, returning the
// decoded claims. Lifetime checks use zero clock skew.
func (s *jwtValidationStrategy) GetPrincipalFromToken(token string) (*TokenClaims, error) {
	parserOptions := make([]jwt.ParserOption, 0, 2)
	if issuer := s.cfg.GetIssuer(); issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(issuer))
	}
	if audience := s.cfg.GetAudience(); len(audience) > 0 {
		parserOptions = append(parserOptions, jwt.WithAudience(audience...))
	}

	parsed, err := jwt.ParseWithClaims(token, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			s.logger.Error("validation strategy encountered unexpected signing method %v", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.GetSigningKey()), nil
	}, parserOptions...)

	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*TokenClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("unable to decode token claims", errors.CategoryAuth)
	}

	return claims, nil
}

// GetTokenExpiration reads the embedded expiration without verifying the
// signature; the stated expiry is reported even for otherwise invalid
// tokens. The zero time signals an unreadable payload.
func (s *jwtValidationStrategy) GetTokenExpiration(token string) time.Time {
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	return claims.Expires()
}

const bearerPrefix = "Bearer "

type bearerTokenExtraction struct{}

var _ TokenExtractionStrategy = bearerTokenExtraction{}

// ExtractToken pulls the bearer token out of an Authorization header value
func (bearerTokenExtraction) ExtractToken(authorizationHeader string) (string, error) {
	header := strings.TrimSpace(authorizationHeader)
	if header == "" {
		return "", ErrNoBearerToken
	}

	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrNoBearerToken
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", ErrNoBearerToken
	}

	return token, nil
}

func audienceClaim(cfg Config) jwt.ClaimStrings {
	audience := cfg.GetAudience()
	if len(audience) == 0 {
		return nil
	}
	aud := make(jwt.ClaimStrings, len(audience))
	copy(aud, audience)
	return aud
}

func ensureTokenID(rc *jwt.RegisteredClaims) {
	if rc.ID == "" {
		rc.ID = uuid.NewString()
	}
}
