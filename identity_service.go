package identity

import (
	"context"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
)

// IdentityService orchestrates registration, authentication, and user
// management over the unit of work. Expected domain conditions surface as
// Result failures with machine readable codes; only infrastructure
// problems become Go errors, and only on the legacy-shaped operations.
type IdentityService struct {
	uow    UnitOfWork
	logger Logger
}

// NewIdentityService creates an IdentityService over the given unit of work
func NewIdentityService(uow UnitOfWork, logger Logger) *IdentityService {
	if logger == nil {
		logger = defLogger{}
	}
	return &IdentityService{uow: uow, logger: logger}
}

// Register creates a new user. It fails with EMAIL_EXISTS when the email
// is already present (case-insensitive) and with a field error map when
// the payload does not validate. New users get the default role, active
// status, and a store-issued id.
func (s *IdentityService) Register(ctx context.Context, request RegisterRequest) Result[*User] {
	if err := request.Validate(); err != nil {
		return ValidationFailure[*User](fieldErrors(err))
	}

	exists, err := s.uow.Users().EmailExists(ctx, request.Email)
	if err != nil {
		return storeFailure[*User](s, "Registration failed", CodeRegistrationError, err)
	}
	if exists {
		return Failure[*User]("Email already exists", CodeEmailExists)
	}

	id, err := s.uow.Users().NextID(ctx)
	if err != nil {
		return storeFailure[*User](s, "Registration failed", CodeRegistrationError, err)
	}

	user := &User{
		ID:        id,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Password:  request.Password,
		Role:      RoleUser,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.uow.Users().Add(ctx, user)
	if err != nil {
		return storeFailure[*User](s, "Registration failed", CodeRegistrationError, err)
	}

	if _, err := s.uow.SaveChanges(ctx); err != nil {
		return storeFailure[*User](s, "Registration failed", CodeRegistrationError, err)
	}

	s.logger.Info("Register created user %d", created.ID)
	return Success(created)
}

// Login authenticates a credential pair. A missing user and a password
// mismatch are indistinguishable to the caller; an inactive account is
// reported before the password is checked.
func (s *IdentityService) Login(ctx context.Context, request LoginRequest) Result[*User] {
	user, err := s.uow.Users().GetByEmail(ctx, request.Email)
	if err != nil {
		if IsNotFound(err) {
			return Failure[*User]("Invalid credentials", CodeInvalidCredentials)
		}
		return storeFailure[*User](s, "Login failed", CodeLoginError, err)
	}

	if !user.IsActive {
		return Failure[*User]("Account is inactive", CodeAccountInactive)
	}

	if user.Password != request.Password {
		return Failure[*User]("Invalid credentials", CodeInvalidCredentials)
	}

	return Success(user)
}

// GetByID looks a user up by id
func (s *IdentityService) GetByID(ctx context.Context, id int) Result[*User] {
	user, err := s.uow.Users().Get(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return Failure[*User]("User not found", CodeUserNotFound)
		}
		return storeFailure[*User](s, "Failed to get user", CodeGetUserError, err)
	}
	return Success(user)
}

// GetByEmail looks a user up by email, case-insensitive
func (s *IdentityService) GetByEmail(ctx context.Context, email string) Result[*User] {
	user, err := s.uow.Users().GetByEmail(ctx, email)
	if err != nil {
		if IsNotFound(err) {
			return Failure[*User]("User not found", CodeUserNotFound)
		}
		return storeFailure[*User](s, "Failed to get user", CodeGetUserError, err)
	}
	return Success(user)
}

// GetActiveUsers returns active users in creation order
func (s *IdentityService) GetActiveUsers(ctx context.Context) Result[[]*User] {
	users, err := s.uow.Users().GetActiveUsers(ctx)
	if err != nil {
		return storeFailure[[]*User](s, "Failed to get active users", CodeGetUsersError, err)
	}
	return Success(users)
}

// GetUsersByRole returns users holding the given role
func (s *IdentityService) GetUsersByRole(ctx context.Context, role string) Result[[]*User] {
	users, err := s.uow.Users().GetByRole(ctx, role)
	if err != nil {
		return storeFailure[[]*User](s, "Failed to get users by role", CodeGetUsersError, err)
	}
	return Success(users)
}

// DeactivateUser clears the active flag on an existing user
func (s *IdentityService) DeactivateUser(ctx context.Context, id int) Result[bool] {
	user, err := s.uow.Users().Get(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return Failure[bool]("User not found", CodeUserNotFound)
		}
		return storeFailure[bool](s, "Failed to deactivate user", CodeDeactivateError, err)
	}

	user.IsActive = false
	if _, err := s.uow.Users().Update(ctx, user); err != nil {
		return storeFailure[bool](s, "Failed to deactivate user", CodeDeactivateError, err)
	}

	if _, err := s.uow.SaveChanges(ctx); err != nil {
		return storeFailure[bool](s, "Failed to deactivate user", CodeDeactivateError, err)
	}

	return Success(true)
}

// UpdateUserRole replaces the role on an existing user
func (s *IdentityService) UpdateUserRole(ctx context.Context, id int, role string) Result[bool] {
	user, err := s.uow.Users().Get(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return Failure[bool]("User not found", CodeUserNotFound)
		}
		return storeFailure[bool](s, "Failed to update user role", CodeUpdateRoleError, err)
	}

	user.Role = role
	if _, err := s.uow.Users().Update(ctx, user); err != nil {
		return storeFailure[bool](s, "Failed to update user role", CodeUpdateRoleError, err)
	}

	if _, err := s.uow.SaveChanges(ctx); err != nil {
		return storeFailure[bool](s, "Failed to update user role", CodeUpdateRoleError, err)
	}

	return Success(true)
}

// Legacy-shaped operations for callers expecting plain values.

// GetUserByEmail returns the user or a not-found error
func (s *IdentityService) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.uow.Users().GetByEmail(ctx, email)
}

// GetUserByID returns the user or a not-found error
func (s *IdentityService) GetUserByID(ctx context.Context, id int) (*User, error) {
	return s.uow.Users().Get(ctx, id)
}

// CreateUser registers a user, converting a failed Result into an error
func (s *IdentityService) CreateUser(ctx context.Context, request RegisterRequest) (*User, error) {
	result := s.Register(ctx, request)
	if result.IsSuccess() {
		return result.Data(), nil
	}

	return nil, errors.New(result.ErrorMessage(), errors.CategoryOperation).
		WithTextCode(result.ErrorCode())
}

// ValidatePassword compares the presented secret against the stored one
func (s *IdentityService) ValidatePassword(user *User, password string) bool {
	return user != nil && user.Password == password
}

// GetAllUsers returns the active users, empty on any store failure
func (s *IdentityService) GetAllUsers(ctx context.Context) []*User {
	result := s.GetActiveUsers(ctx)
	if !result.IsSuccess() {
		return []*User{}
	}
	return result.Data()
}

// UserExists reports whether the email is registered
func (s *IdentityService) UserExists(ctx context.Context, email string) (bool, error) {
	return s.uow.Users().EmailExists(ctx, email)
}

func storeFailureLog(logger Logger, message string, err error) {
	var richErr *errors.Error
	if errors.As(err, &richErr) {
		logger.Error("%s: %s (%s) %s",
			message,
			richErr.Message,
			richErr.Category,
			print.MaybePrettyJSON(richErr.Metadata),
		)
		return
	}
	logger.Error("%s: %v", message, err)
}

// storeFailure wraps an unexpected store error into a generic Result
// failure instead of letting it escape the service boundary.
func storeFailure[T any](s *IdentityService, message, code string, err error) Result[T] {
	storeFailureLog(s.logger, message, err)
	return Failure[T](message+": "+err.Error(), code)
}
