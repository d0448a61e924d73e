package usecase

import (
	"context"
	"log/slog"

	apperrors "github.com/sijosaji/kitchensink/internal/errors"
	"github.com/sijosaji/kitchensink/internal/member/domain"
)

type memberUseCase struct {
	memberRepo MemberRepository
	sequence   SequenceAllocator
	logger     *slog.Logger
}

// NewMemberUseCase creates a new MemberUseCase.
func NewMemberUseCase(
	memberRepo MemberRepository,
	sequence SequenceAllocator,
	logger *slog.Logger,
) MemberUseCase {
	return &memberUseCase{
		memberRepo: memberRepo,
		sequence:   sequence,
		logger:     logger,
	}
}

// List returns all members ordered by name.
func (uc *memberUseCase) List(ctx context.Context) ([]*domain.Member, error) {
	return uc.memberRepo.FindAll(ctx)
}

// Get returns a single member or ErrMemberNotFound.
func (uc *memberUseCase) Get(ctx context.Context, id int64) (*domain.Member, error) {
	return uc.memberRepo.FindByID(ctx, id)
}

// Register validates the input, allocates an ID and stores the member.
// Email uniqueness is enforced by the store's unique index.
func (uc *memberUseCase) Register(
	ctx context.Context,
	input *domain.RegisterMemberInput,
) (*domain.Member, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	id, err := uc.sequence.NextValue(ctx, domain.SequenceName)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to allocate member id")
	}

	member := &domain.Member{
		ID:          id,
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	}

	if err := uc.memberRepo.Insert(ctx, member); err != nil {
		return nil, err
	}

	uc.logger.Info("member registered", slog.Int64("member_id", member.ID))

	return member, nil
}

// Update applies a partial update to an existing member.
func (uc *memberUseCase) Update(
	ctx context.Context,
	id int64,
	input *domain.UpdateMemberInput,
) (*domain.Member, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	member, err := uc.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ChangesEmail(member) {
		owner, err := uc.memberRepo.FindByEmail(ctx, *input.Email)
		switch {
		case err == nil && owner.ID != member.ID:
			return nil, domain.ErrEmailInUse
		case err != nil && !apperrors.Is(err, domain.ErrMemberNotFound):
			return nil, err
		}
	}

	input.Apply(member)

	if err := uc.memberRepo.Replace(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// Delete removes a member or returns ErrMemberNotFound.
func (uc *memberUseCase) Delete(ctx context.Context, id int64) error {
	return uc.memberRepo.Delete(ctx, id)
}
