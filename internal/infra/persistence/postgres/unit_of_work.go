// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"sync"

	domainerrors "newswire/internal/domain/errors"
	"newswire/internal/domain/repository"
	"newswire/internal/errors"

	"gorm.io/gorm"
)

// gormUnitOfWork implements the domain's UnitOfWork interface over one GORM
// transaction. Repositories are constructed lazily, all bound to that single
// transaction. Instances are per-operation and never shared.
type gormUnitOfWork struct {
	tx        *gorm.DB
	committed bool
	finished  bool

	once     sync.Once
	userRepo repository.UserRepository
	newsRepo repository.NewsRepository
}

// gormUnitOfWorkFactory implements the domain's UnitOfWorkFactory interface.
type gormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewUnitOfWorkFactory is the constructor for gormUnitOfWorkFactory.
// This function will be used as an Fx provider.
func NewUnitOfWorkFactory(db *gorm.DB) repository.UnitOfWorkFactory {
	return &gormUnitOfWorkFactory{db: db}
}

// Begin acquires a transactional connection for one logical operation.
// The ctx is bound to the transaction, so cancelling the surrounding request
// before Commit aborts the transaction and rolls back.
func (f *gormUnitOfWorkFactory) Begin(ctx context.Context) (repository.UnitOfWork, error) {
	tx := f.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, errors.Wrap(tx.Error, "failed to begin transaction")
	}

	return &gormUnitOfWork{tx: tx}, nil
}

func (uow *gormUnitOfWork) initRepos() {
	uow.once.Do(func() {
		uow.userRepo = NewUserRepository(uow.tx)
		uow.newsRepo = NewNewsRepository(uow.tx)
	})
}

// Users returns the user repository bound to this transaction.
func (uow *gormUnitOfWork) Users() repository.UserRepository {
	uow.initRepos()

	return uow.userRepo
}

// News returns the news repository bound to this transaction.
func (uow *gormUnitOfWork) News() repository.NewsRepository {
	uow.initRepos()

	return uow.newsRepo
}

// Commit makes all staged mutations durable atomically. A second Commit is a
// programming error, not a recoverable condition.
func (uow *gormUnitOfWork) Commit() error {
	if uow.committed {
		return domainerrors.ErrDoubleCommit.WrapMessage("unit of work already committed")
	}
	if uow.finished {
		return errors.New("unit of work already closed")
	}

	if err := uow.tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	uow.committed = true
	uow.finished = true

	return nil
}

// Rollback discards all staged mutations. After Commit it is a no-op so that
// a deferred Rollback is always safe.
func (uow *gormUnitOfWork) Rollback() error {
	if uow.finished {
		return nil
	}
	uow.finished = true

	if err := uow.tx.Rollback().Error; err != nil {
		return errors.Wrap(err, "failed to roll back transaction")
	}

	return nil
}

// Close releases the transaction, rolling back anything not committed.
func (uow *gormUnitOfWork) Close() error {
	return uow.Rollback()
}

// gormTransactionManager implements the domain's TransactionManager interface
// as a closure convenience over the factory.
type gormTransactionManager struct {
	factory repository.UnitOfWorkFactory
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(factory repository.UnitOfWorkFactory) repository.TransactionManager {
	return &gormTransactionManager{factory: factory}
}

// Execute runs the given function within a single unit-of-work scope.
// If fn returns an error the scope is rolled back; otherwise it is committed,
// unless fn already committed explicitly.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	uow, err := tm.factory.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin unit of work")
	}

	// This defer ensures that a panic inside fn rolls the scope back before
	// the panic resumes its unwind towards the recovery middleware.
	defer func() {
		if r := recover(); r != nil {
			_ = uow.Close()
			panic(r)
		}
	}()

	if err := fn(uow); err != nil {
		if rbErr := uow.Rollback(); rbErr != nil {
			// Return the original, more meaningful business error.
			return errors.Wrapf(err, "transaction rollback failed: %v (original error)", rbErr)
		}

		return err
	}

	if alreadyCommitted(uow) {
		return nil
	}

	if err := uow.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit unit of work")
	}

	return nil
}

func alreadyCommitted(uow repository.UnitOfWork) bool {
	g, ok := uow.(*gormUnitOfWork)

	return ok && g.committed
}
