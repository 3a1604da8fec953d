package identity_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-identity"
	"github.com/stretchr/testify/assert"
)

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()
	users := identity.NewUsersRepository()
	uow := identity.NewUnitOfWork(users)

	t.Run("exposes the injected store", func(t *testing.T) {
		assert.Equal(t, users, uow.Users())
	})

	t.Run("save reports a constant change count", func(t *testing.T) {
		count, err := uow.SaveChanges(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("transaction operations are no-ops", func(t *testing.T) {
		assert.NoError(t, uow.BeginTransaction(ctx))
		assert.NoError(t, uow.CommitTransaction(ctx))
		assert.NoError(t, uow.RollbackTransaction(ctx))
	})

	t.Run("mutations through the store are visible immediately", func(t *testing.T) {
		_, err := uow.Users().Add(ctx, testUser(1, "a@example.com"))
		assert.NoError(t, err)

		assert.NoError(t, uow.BeginTransaction(ctx))
		_, err = uow.Users().Add(ctx, testUser(2, "b@example.com"))
		assert.NoError(t, err)
		assert.NoError(t, uow.RollbackTransaction(ctx))

		// rollback cannot undo in-memory writes
		all, err := uow.Users().GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
