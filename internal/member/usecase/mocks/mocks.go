// Package mocks provides mock implementations of the member use case dependencies.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sijosaji/kitchensink/internal/member/domain"
)

// MockMemberRepository is a mock implementation of MemberRepository for testing.
type MockMemberRepository struct {
	mock.Mock
}

// Insert mocks the Insert method.
func (m *MockMemberRepository) Insert(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

// FindAll mocks the FindAll method.
func (m *MockMemberRepository) FindAll(ctx context.Context) ([]*domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

// FindByID mocks the FindByID method.
func (m *MockMemberRepository) FindByID(ctx context.Context, id int64) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

// FindByEmail mocks the FindByEmail method.
func (m *MockMemberRepository) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

// Replace mocks the Replace method.
func (m *MockMemberRepository) Replace(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

// Delete mocks the Delete method.
func (m *MockMemberRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSequenceAllocator is a mock implementation of SequenceAllocator for testing.
type MockSequenceAllocator struct {
	mock.Mock
}

// NextValue mocks the NextValue method.
func (m *MockSequenceAllocator) NextValue(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

// MockMemberUseCase is a mock implementation of MemberUseCase for testing.
type MockMemberUseCase struct {
	mock.Mock
}

// List mocks the List method.
func (m *MockMemberUseCase) List(ctx context.Context) ([]*domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

// Get mocks the Get method.
func (m *MockMemberUseCase) Get(ctx context.Context, id int64) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

// Register mocks the Register method.
func (m *MockMemberUseCase) Register(
	ctx context.Context,
	input *domain.RegisterMemberInput,
) (*domain.Member, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

// Update mocks the Update method.
func (m *MockMemberUseCase) Update(
	ctx context.Context,
	id int64,
	input *domain.UpdateMemberInput,
) (*domain.Member, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockMemberUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
