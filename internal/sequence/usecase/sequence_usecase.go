// Package usecase issues monotonically increasing identifiers from named sequences.
package usecase

import (
	"context"
	"log/slog"

	apperrors "github.com/sijosaji/kitchensink/internal/errors"
	"github.com/sijosaji/kitchensink/internal/sequence/domain"
)

// CounterRepository defines the atomic increment-and-fetch primitive.
type CounterRepository interface {
	Increment(ctx context.Context, name string) (*domain.Counter, error)
}

// UseCase defines the sequence allocation operations.
type UseCase interface {
	// NextValue returns the next value of the named sequence. Values are never reused.
	NextValue(ctx context.Context, name string) (int64, error)
}

// SequenceUseCase allocates values with one store round trip per call.
// It holds no in-process cache or lock; atomicity comes from the store.
type SequenceUseCase struct {
	counterRepo CounterRepository
	logger      *slog.Logger
}

// NewSequenceUseCase creates a new SequenceUseCase.
func NewSequenceUseCase(counterRepo CounterRepository, logger *slog.Logger) UseCase {
	return &SequenceUseCase{
		counterRepo: counterRepo,
		logger:      logger,
	}
}

// NextValue increments the counter and returns its new value.
// A store that returns no counter yields 1 so record creation never blocks on bootstrap.
func (uc *SequenceUseCase) NextValue(ctx context.Context, name string) (int64, error) {
	counter, err := uc.counterRepo.Increment(ctx, name)
	if err != nil {
		if apperrors.Is(err, domain.ErrCounterMissing) {
			uc.logger.Warn("sequence counter not returned, falling back to 1",
				slog.String("sequence", name))
			return 1, nil
		}
		return 0, err
	}

	if counter == nil {
		return 1, nil
	}

	return counter.Seq, nil
}
