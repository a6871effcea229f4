package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Repositories obtained after Begin
// run inside the transaction; Commit or Rollback ends it.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error when no transaction is active, so a deferred
	// Rollback after a successful Commit is harmless.
	Rollback(ctx context.Context) error

	CustomerRepository() CustomerRepository
	ParcelRepository() ParcelRepository
	PickupRepository() PickupRepository
}
