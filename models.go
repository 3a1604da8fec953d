package identity

import (
	"strings"
	"time"
)

// Role is the user's role
type Role = string

const (
	// RoleUser is the default role assigned at registration
	RoleUser Role = "User"
	// RoleAdmin is the administrative role
	RoleAdmin Role = "Admin"
)

// User is the identity record held by the user store. The password is kept
// as the raw secret; credential hardening is out of scope for this store.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// FullName returns the display name used in token claims
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
