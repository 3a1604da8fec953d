package identity

import (
	"strings"

	"github.com/goliatone/go-errors"
)

// Text codes exposed on structured errors so callers can branch without
// string matching.
const (
	TextCodeStrategyNotSupported = "STRATEGY_NOT_SUPPORTED"
	TextCodeTokenSigningFailed   = "TOKEN_SIGNING_FAILED"
	TextCodeTokenMissing         = "TOKEN_MISSING"
	TextCodeRecordNotFound       = "RECORD_NOT_FOUND"
)

// ErrStrategyNotSupported is returned by the strategy factory for any
// user-type/token-type pair it does not recognize.
var ErrStrategyNotSupported = errors.New(
	"token strategy not supported",
	errors.CategoryBadInput,
).WithTextCode(TextCodeStrategyNotSupported)

// ErrNoBearerToken is returned when an authorization header carries no
// usable bearer token.
var ErrNoBearerToken = errors.New(
	"no bearer token in authorization header",
	errors.CategoryAuth,
).WithTextCode(TextCodeTokenMissing)

// ErrRecordNotFound is the store level error for missing keys
var ErrRecordNotFound = errors.New(
	"record not found",
	errors.CategoryNotFound,
).WithTextCode(TextCodeRecordNotFound)

// IsNotFound reports whether err represents a missing record
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.IsNotFound(err) || errors.Is(err, ErrRecordNotFound)
}

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is malformed")
}
