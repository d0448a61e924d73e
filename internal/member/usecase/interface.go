// Package usecase implements the member registry business logic.
package usecase

import (
	"context"

	"github.com/sijosaji/kitchensink/internal/member/domain"
)

// MemberRepository defines persistence operations for members.
type MemberRepository interface {
	// Insert stores a new member. Returns ErrMemberAlreadyExists on a unique index violation.
	Insert(ctx context.Context, member *domain.Member) error

	// FindAll returns every member ordered by name ascending.
	FindAll(ctx context.Context) ([]*domain.Member, error)

	// FindByID returns ErrMemberNotFound when no member has the given ID.
	FindByID(ctx context.Context, id int64) (*domain.Member, error)

	// FindByEmail returns ErrMemberNotFound when no member owns the email.
	FindByEmail(ctx context.Context, email string) (*domain.Member, error)

	// Replace overwrites an existing member. Returns ErrMemberNotFound if it is gone.
	Replace(ctx context.Context, member *domain.Member) error

	// Delete removes a member. Returns ErrMemberNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// SequenceAllocator issues member IDs.
type SequenceAllocator interface {
	NextValue(ctx context.Context, name string) (int64, error)
}

// MemberUseCase defines the member registry operations.
type MemberUseCase interface {
	List(ctx context.Context) ([]*domain.Member, error)
	Get(ctx context.Context, id int64) (*domain.Member, error)
	Register(ctx context.Context, input *domain.RegisterMemberInput) (*domain.Member, error)
	Update(ctx context.Context, id int64, input *domain.UpdateMemberInput) (*domain.Member, error)
	Delete(ctx context.Context, id int64) error
}
