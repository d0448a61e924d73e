package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/sijosaji/kitchensink/internal/errors"
	"github.com/sijosaji/kitchensink/internal/member/domain"
	"github.com/sijosaji/kitchensink/internal/member/usecase"
	usecaseMocks "github.com/sijosaji/kitchensink/internal/member/usecase/mocks"
)

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

func newMember() *domain.Member {
	return &domain.Member{ID: 1, Name: "Jane Doe", Email: "jane@example.com", PhoneNumber: "2125551212"}
}

func TestMemberUseCase_List(t *testing.T) {
	ctx := context.Background()
	repo := &usecaseMocks.MockMemberRepository{}
	uc := usecase.NewMemberUseCase(repo, &usecaseMocks.MockSequenceAllocator{}, createTestLogger())

	members := []*domain.Member{newMember()}
	repo.On("FindAll", ctx).Return(members, nil).Once()

	result, err := uc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, members, result)
	repo.AssertExpectations(t)
}

func TestMemberUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := &usecaseMocks.MockMemberRepository{}
		uc := usecase.NewMemberUseCase(repo, &usecaseMocks.MockSequenceAllocator{}, createTestLogger())

		repo.On("FindByID", ctx, int64(1)).Return(newMember(), nil).Once()

		member, err := uc.Get(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, newMember(), member)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo := &usecaseMocks.MockMemberRepository{}
		uc := usecase.NewMemberUseCase(repo, &usecaseMocks.MockSequenceAllocator{}, createTestLogger())

		repo.On("FindByID", ctx, int64(9)).Return(nil, domain.ErrMemberNotFound).Once()

		member, err := uc.Get(ctx, 9)

		assert.Nil(t, member)
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})
}

func TestMemberUseCase_Register(t *testing.T) {
	ctx := context.Background()
	validInput := func() *domain.RegisterMemberInput {
		return &domain.RegisterMemberInput{Name: "Jane Doe", Email: "jane@example.com", PhoneNumber: "2125551212"}
	}

	t.Run("Success_AllocatesIDFromSequence", func(t *testing.T) {
		repo := &usecaseMocks.MockMemberRepository{}
		sequence := &usecaseMocks.MockSequenceAllocator{}
		uc := usecase.NewMemberUseCase(repo, sequence, createTestLogger())

		sequence.On("NextValue", ctx, "MEMBER_ID_SEQUENCE").Return(int64(5), nil).Once()
		repo.On("Insert", ctx, mock.MatchedBy(func(m *domain.Member) bool {
			return m.ID == 5 && m.Email == "jane@example.com"
		})).Return(nil).Once()

		member, err := uc.Register(ctx, validInput())

		require.NoError(t, err)
		assert.Equal(t, int64(5), member.ID)
		assert.Equal(t, "Jane Doe", member.Name)
		sequence.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("Error_ValidationSkipsAllocation", func(t *testing.T) {
		repo := &usecaseMocks.MockMemberRepository{}
		sequence := &usecaseMocks.MockSequenceAllocator{}
		uc := usecase.NewMemberUseCase(repo, sequence, createTestLogger())

		member, err := uc.Register(ctx, &domain.RegisterMemberInput{Name: "J4ne"})

		assert.Nil(t, member)
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Must not contain numbers", validationErr.Fields["name"])
		sequence.AssertNotCalled(t, "NextValue", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Error_DuplicateEmailIsConflict", func(t *testing.T) {
		repo := &usecaseMocks.MockMemberRepository{}
		sequence := &usecaseMocks.MockSequenceAllocator{}
		uc := usecase.NewMemberUseCase(repo, sequence, createTestLogger())

		sequence.On("NextValue", ctx, "MEMBER_ID_SEQUENCE").Return(int64(6), nil).Once()
		repo.On("Insert", ctx, mock.Anything).Return(domain.ErrMemberAlreadyExists).Once()

		member, err := uc.Register(ctx, validInput())

		assert.Nil(t, member)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("Error_AllocatorFailure", func(t *testing.T) {
		repo := &usecaseMocks.MockMemberRepository{}
		sequence := &usecaseMocks.MockSequenceAllocator{}
		uc := usecase.NewMemberUseCase(repo, sequence, createTestLogger())
		storeErr := errors.New("store down")

		sequence.On("NextValue", ctx, "MEMBER_ID_SEQUENCE").Return(int64(0), storeErr).Once()

		member, err := uc.Register(ctx, validInput())

		assert.Nil(t, member)
		assert.ErrorIs(t, err, storeErr)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestMemberUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_AppliesPresentFields", func(t *testing.T) {
		repo := &usecaseMocks.MockMemberRepository{}
		uc := usecase.NewMemberUseCase(repo, &usecaseMocks.MockSequenceAllocator{}, createTestLogger())

		repo.On("FindByID", ctx, int64(1)).Return(newMember(), nil).Once()
		repo.On("Replace", ctx, mock.MatchedBy(func(m *domain.Member) bool {
			return m.Name == "Janet" && m.Email == "jane@example.com"
		})).Return(nil).Once()

		member, err := uc.Update(ctx, 1, &domain.UpdateMemberInput{Name: strPtr("Janet")})

		require.NoError(t, err)
		assert.Equal(t, "Janet", member.Name)
		repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
		repo.AssertExpectations(t)
	})

	t.Run("Success_NewEmailUnused", func(t *testing.T) {
		repo := &usecaseMocks.MockMemberRepository{}
		uc := usecase.NewMemberUseCase(repo, &usecaseMocks.MockSequenceAllocator{}, createTestLogger())

		repo.On("FindByID", ctx, int64(1)).Return(newMember(), nil).Once()
		repo.On("FindByEmail", ctx, "new@example.com").Return(nil, domain.ErrMemberNotFound).Once()
		repo.On("Replace", ctx, mock.Anything).Return(nil).Once()

		member, err := uc.Update(ctx, 1, &domain.UpdateMemberInput{Email: strPtr("new@example.com")})

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", member.Email)
	})

	t.Run("Error_EmailOwnedByAnotherMember", func(t *testing.T) {
		repo := &usecaseMocks.MockMemberRepository{}
		uc := usecase.NewMemberUseCase(repo, &usecaseMocks.MockSequenceAllocator{}, createTestLogger())
		other := &domain.Member{ID: 2, Name: "John", Email: "john@example.com", PhoneNumber: "2125551213"}

		repo.On("FindByID", ctx, int64(1)).Return(newMember(), nil).Once()
		repo.On("FindByEmail", ctx, "john@example.com").Return(other, nil).Once()

		member, err := uc.Update(ctx, 1, &domain.UpdateMemberInput{Email: strPtr("john@example.com")})

		assert.Nil(t, member)
		assert.ErrorIs(t, err, domain.ErrEmailInUse)
		repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo := &usecaseMocks.MockMemberRepository{}
		uc := usecase.NewMemberUseCase(repo, &usecaseMocks.MockSequenceAllocator{}, createTestLogger())

		repo.On("FindByID", ctx, int64(3)).Return(nil, domain.ErrMemberNotFound).Once()

		member, err := uc.Update(ctx, 3, &domain.UpdateMemberInput{Name: strPtr("Janet")})

		assert.Nil(t, member)
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})

	t.Run("Error_ValidationBeforeLookup", func(t *testing.T) {
		repo := &usecaseMocks.MockMemberRepository{}
		uc := usecase.NewMemberUseCase(repo, &usecaseMocks.MockSequenceAllocator{}, createTestLogger())

		member, err := uc.Update(ctx, 1, &domain.UpdateMemberInput{PhoneNumber: strPtr("abc")})

		assert.Nil(t, member)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestMemberUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	repo := &usecaseMocks.MockMemberRepository{}
	uc := usecase.NewMemberUseCase(repo, &usecaseMocks.MockSequenceAllocator{}, createTestLogger())

	repo.On("Delete", ctx, int64(1)).Return(nil).Once()
	repo.On("Delete", ctx, int64(2)).Return(domain.ErrMemberNotFound).Once()

	assert.NoError(t, uc.Delete(ctx, 1))
	assert.ErrorIs(t, uc.Delete(ctx, 2), domain.ErrMemberNotFound)
	repo.AssertExpectations(t)
}
