package impl

import (
	"context"
	"io"
	"log/slog"

	"newswire/internal/domain/repository"
	mockRepo "newswire/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passThroughExecute wires a mocked TransactionManager to run the submitted
// closure against the given unit of work and propagate its error, mirroring
// the real commit-on-nil / rollback-on-error contract closely enough for
// service-level tests.
func passThroughExecute(txManager *mockRepo.MockTransactionManager, uow repository.UnitOfWork) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.UnitOfWork) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		})
}
