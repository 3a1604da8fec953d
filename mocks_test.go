package identity_test

import (
	"time"

	"github.com/goliatone/go-identity"
	"github.com/stretchr/testify/mock"
)

// testLogger swallows log output so services can log freely under test
type testLogger struct{}

func (testLogger) Debug(format string, args ...any) {}
func (testLogger) Info(format string, args ...any)  {}
func (testLogger) Warn(format string, args ...any)  {}
func (testLogger) Error(format string, args ...any) {}

// MockLogger records calls for tests that assert on logging
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Info(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Error(format string, args ...any) {
	m.Called(format, args)
}

func testConfig() *identity.TokenConfig {
	return &identity.TokenConfig{
		SigningKey:      "test-signing-key",
		TokenExpiration: 30,
		Issuer:          "test-issuer",
		Audience:        []string{"test-audience"},
	}
}

func newTokenService(cfg identity.Config) *identity.TokenServiceImpl {
	factory := identity.NewTokenStrategyFactory(cfg, testLogger{})
	return identity.NewTokenService(factory, testLogger{})
}

func testUser(id int, email string) *identity.User {
	return &identity.User{
		ID:        id,
		Email:     email,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "secret",
		Role:      identity.RoleUser,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}
