package service_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"crowdfund-service/internal/service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passThroughTx настраивает мок транзакции так, чтобы fn выполнялась сразу.
func passThroughTx(tm *mocks.TransactionManager) {
	tm.On("RunInTransaction", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}
