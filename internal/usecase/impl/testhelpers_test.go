package impl

import (
	"context"
	"io"
	"log/slog"

	"mahsoulna/internal/domain/repository"
)

// fakeTxManager stands in for the GORM transaction manager in unit tests. It
// runs the callback against a fixed repository factory and surfaces the
// callback's error the way a rolled-back transaction would.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f.factory)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
