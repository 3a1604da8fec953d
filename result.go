package identity

// Error codes carried by Result failures. These are the machine-readable
// half of the uniform boundary contract the transport layer relies on.
const (
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAccountInactive    = "ACCOUNT_INACTIVE"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeRegistrationError  = "REGISTRATION_ERROR"
	CodeLoginError         = "LOGIN_ERROR"
	CodeGetUserError       = "GET_USER_ERROR"
	CodeGetUsersError      = "GET_USERS_ERROR"
	CodeDeactivateError    = "DEACTIVATE_ERROR"
	CodeUpdateRoleError    = "UPDATE_ROLE_ERROR"
)

// Result is a tagged operation outcome: success holding a value, failure
// holding a message and an optional error code, or a validation failure
// holding field-level messages. Exactly one shape is populated; Data is
// the zero value on any failure.
type Result[T any] struct {
	success          bool
	data             T
	errorMessage     string
	errorCode        string
	validationErrors map[string][]string
}

// Success wraps a value in a successful result
func Success[T any](data T) Result[T] {
	return Result[T]{success: true, data: data}
}

// Failure builds a failed result with a human readable message and an
// optional machine readable code.
func Failure[T any](message string, code ...string) Result[T] {
	r := Result[T]{errorMessage: message}
	if len(code) > 0 {
		r.errorCode = code[0]
	}
	return r
}

// ValidationFailure builds a failed result carrying field name to
// validation messages.
func ValidationFailure[T any](validationErrors map[string][]string) Result[T] {
	return Result[T]{
		errorMessage:     "Validation failed",
		errorCode:        CodeValidationError,
		validationErrors: validationErrors,
	}
}

// IsSuccess reports whether the result holds a value
func (r Result[T]) IsSuccess() bool {
	return r.success
}

// Data returns the wrapped value; the zero value on failure
func (r Result[T]) Data() T {
	return r.data
}

// ErrorMessage returns the failure message, empty on success
func (r Result[T]) ErrorMessage() string {
	return r.errorMessage
}

// ErrorCode returns the machine readable failure code, empty on success
func (r Result[T]) ErrorCode() string {
	return r.errorCode
}

// ValidationErrors returns field level validation messages, nil unless the
// result was built with ValidationFailure.
func (r Result[T]) ValidationErrors() map[string][]string {
	return r.validationErrors
}

// Match folds the result into a single value
func Match[T, R any](r Result[T], onSuccess func(T) R, onFailure func(message, code string) R) R {
	if r.success {
		return onSuccess(r.data)
	}
	return onFailure(r.errorMessage, r.errorCode)
}
