package identity

import "context"

// UnitOfWork groups repository access behind a save/transaction contract.
// Durable implementations map these onto real transactions; the in-memory
// one applies changes immediately and treats the contract as no-ops.
type UnitOfWork interface {
	Users() Users
	SaveChanges(ctx context.Context) (int, error)
	BeginTransaction(ctx context.Context) error
	CommitTransaction(ctx context.Context) error
	RollbackTransaction(ctx context.Context) error
}

type memoryUnitOfWork struct {
	users Users
}

var _ UnitOfWork = (*memoryUnitOfWork)(nil)

// NewUnitOfWork wraps an explicitly constructed user store. The store is
// injected here rather than lazily created so the composition root owns
// its lifecycle.
func NewUnitOfWork(users Users) UnitOfWork {
	return &memoryUnitOfWork{users: users}
}

func (u *memoryUnitOfWork) Users() Users {
	return u.users
}

// SaveChanges reports a constant change count; in-memory mutations are
// applied immediately.
func (u *memoryUnitOfWork) SaveChanges(ctx context.Context) (int, error) {
	return 1, nil
}

func (u *memoryUnitOfWork) BeginTransaction(ctx context.Context) error {
	return nil
}

func (u *memoryUnitOfWork) CommitTransaction(ctx context.Context) error {
	return nil
}

func (u *memoryUnitOfWork) RollbackTransaction(ctx context.Context) error {
	return nil
}
