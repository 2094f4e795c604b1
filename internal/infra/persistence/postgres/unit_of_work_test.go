package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "newswire/internal/domain/errors"
	"newswire/internal/domain/repository"
	"newswire/internal/errors"
	mockRepo "newswire/internal/mocks/repository"
)

// The flag transitions are checked before any transaction call, so they can be
// exercised without a live database.

func TestGormUnitOfWork_DoubleCommit(t *testing.T) {
	uow := &gormUnitOfWork{committed: true, finished: true}

	err := uow.Commit()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDoubleCommit))
}

func TestGormUnitOfWork_CommitAfterClose(t *testing.T) {
	uow := &gormUnitOfWork{finished: true}

	err := uow.Commit()
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrDoubleCommit), "close-then-commit is not a double commit")
}

func TestGormUnitOfWork_RollbackAfterCommitIsNoOp(t *testing.T) {
	uow := &gormUnitOfWork{committed: true, finished: true}

	assert.NoError(t, uow.Rollback())
	assert.NoError(t, uow.Close())
}

func createTestTransactionManager(t *testing.T) (repository.TransactionManager, *mockRepo.MockUnitOfWork) {
	uow := mockRepo.NewMockUnitOfWork(t)
	factory := mockRepo.NewMockUnitOfWorkFactory(t)
	factory.EXPECT().Begin(context.Background()).Return(uow, nil)

	return NewTransactionManager(factory), uow
}

func TestTransactionManager_Execute_CommitsOnSuccess(t *testing.T) {
	tm, uow := createTestTransactionManager(t)

	uow.EXPECT().Commit().Return(nil)

	var seen repository.UnitOfWork
	err := tm.Execute(context.Background(), func(scope repository.UnitOfWork) error {
		seen = scope

		return nil
	})

	require.NoError(t, err)
	assert.Same(t, uow, seen)
	uow.AssertNotCalled(t, "Rollback")
}

func TestTransactionManager_Execute_RollsBackOnError(t *testing.T) {
	tm, uow := createTestTransactionManager(t)

	uow.EXPECT().Rollback().Return(nil)

	boom := errors.New("insert failed")
	err := tm.Execute(context.Background(), func(repository.UnitOfWork) error {
		return boom
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	uow.AssertNotCalled(t, "Commit")
}

func TestTransactionManager_Execute_ReturnsBusinessErrorWhenRollbackFails(t *testing.T) {
	tm, uow := createTestTransactionManager(t)

	uow.EXPECT().Rollback().Return(errors.New("connection lost"))

	boom := errors.New("insert failed")
	err := tm.Execute(context.Background(), func(repository.UnitOfWork) error {
		return boom
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, boom), "the business error stays the cause")
}

func TestTransactionManager_Execute_ClosesOnPanic(t *testing.T) {
	tm, uow := createTestTransactionManager(t)

	uow.EXPECT().Close().Return(nil)

	assert.PanicsWithValue(t, "midway", func() {
		_ = tm.Execute(context.Background(), func(repository.UnitOfWork) error {
			panic("midway")
		})
	})
	uow.AssertNotCalled(t, "Commit")
}

func TestTransactionManager_Execute_SkipsCommitWhenFnAlreadyCommitted(t *testing.T) {
	uow := &gormUnitOfWork{committed: true, finished: true}
	factory := mockRepo.NewMockUnitOfWorkFactory(t)
	factory.EXPECT().Begin(context.Background()).Return(uow, nil)
	tm := NewTransactionManager(factory)

	err := tm.Execute(context.Background(), func(repository.UnitOfWork) error {
		return nil
	})

	require.NoError(t, err, "an explicit commit inside fn must not trigger a second one")
}

func TestTransactionManager_Execute_BeginFailure(t *testing.T) {
	factory := mockRepo.NewMockUnitOfWorkFactory(t)
	factory.EXPECT().Begin(context.Background()).Return(nil, errors.New("pool exhausted"))
	tm := NewTransactionManager(factory)

	called := false
	err := tm.Execute(context.Background(), func(repository.UnitOfWork) error {
		called = true

		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}
