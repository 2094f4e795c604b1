package repository

import "context"

// UnitOfWork scopes one or more repository operations into a single atomic
// transaction. Each instance owns its own transactional connection; the
// repositories it hands out are bound to that connection. Instances are never
// shared across concurrent operations.
//
// Lifecycle: obtain from UnitOfWorkFactory.Begin, defer Close, call Commit
// exactly once on success. Close without a prior Commit rolls back everything
// staged since Begin.
type UnitOfWork interface {
	// Users returns the user repository bound to this transaction.
	Users() UserRepository

	// News returns the news repository bound to this transaction.
	News() NewsRepository

	// Commit makes all staged mutations durable atomically. Calling Commit a
	// second time is a programming error and returns domainerrors.ErrDoubleCommit.
	Commit() error

	// Rollback discards all staged mutations. After a successful Commit it is
	// a no-op.
	Rollback() error

	// Close releases the transactional connection, rolling back when Commit
	// was never called. Safe to defer unconditionally.
	Close() error
}

// UnitOfWorkFactory begins independent unit-of-work scopes. Two scopes created
// for two concurrent logical operations share no mutable state.
type UnitOfWorkFactory interface {
	// Begin acquires a transactional connection. Cancelling ctx before Commit
	// aborts the transaction and rolls back.
	Begin(ctx context.Context) (UnitOfWork, error)
}

// TransactionManager is the closure convenience over UnitOfWorkFactory used by
// the use case layer: it commits when fn returns nil, and rolls back when fn
// returns an error or panics.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
}
