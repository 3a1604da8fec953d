package identity

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Users is the user store contract. It extends the generic repository with
// the identity-specific lookups the services always need, all expressible
// as specifications but implemented directly for the hot paths.
type Users interface {
	Repository[*User, int]

	GetByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetByRole(ctx context.Context, role string) ([]*User, error)
	GetActiveUsers(ctx context.Context) ([]*User, error)

	// NextID issues the next user id: max existing id + 1, monotonic
	// across concurrent callers.
	NextID(ctx context.Context) (int, error)
}

type users struct {
	*MemoryRepository[*User, int]

	idMu       sync.Mutex
	lastIssued int
}

var _ Users = (*users)(nil)

// UsersOption configures the users repository at construction
type UsersOption func(*users)

// NewUsersRepository creates an in-memory user store
func NewUsersRepository(opts ...UsersOption) Users {
	repo := &users{
		MemoryRepository: NewMemoryRepository[*User, int](func(u *User) int {
			return u.ID
		}),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(repo)
		}
	}

	return repo
}

// WithSeedUsers preloads records, useful for demos and tests
func WithSeedUsers(seed ...*User) UsersOption {
	return func(u *users) {
		for _, record := range seed {
			if record == nil {
				continue
			}
			if record.CreatedAt.IsZero() {
				record.CreatedAt = time.Now()
			}
			u.entities[record.ID] = record
		}
	}
}

func (u *users) GetByEmail(ctx context.Context, email string) (*User, error) {
	matches, err := u.Find(ctx, UserByEmail(email))
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return nil, ErrRecordNotFound
	}

	return matches[0], nil
}

func (u *users) EmailExists(ctx context.Context, email string) (bool, error) {
	matches, err := u.Find(ctx, UserByEmail(email))
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

// GetByRole returns users with the given role regardless of status,
// case-insensitive on the role name.
func (u *users) GetByRole(ctx context.Context, role string) ([]*User, error) {
	return u.Find(ctx, Specification[*User]{
		Criteria: func(usr *User) bool { return strings.EqualFold(usr.Role, role) },
		OrderBy:  func(a, b *User) bool { return a.LastName < b.LastName },
	})
}

func (u *users) GetActiveUsers(ctx context.Context) ([]*User, error) {
	return u.Find(ctx, ActiveUsers())
}

func (u *users) NextID(ctx context.Context) (int, error) {
	u.idMu.Lock()
	defer u.idMu.Unlock()

	next := u.lastIssued
	all, err := u.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	for _, record := range all {
		if record.ID > next {
			next = record.ID
		}
	}

	u.lastIssued = next + 1
	return u.lastIssued, nil
}
