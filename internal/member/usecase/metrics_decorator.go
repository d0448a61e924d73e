package usecase

import (
	"context"
	"time"

	"github.com/sijosaji/kitchensink/internal/member/domain"
	"github.com/sijosaji/kitchensink/internal/metrics"
)

const metricsDomain = "members"

// memberUseCaseWithMetrics decorates MemberUseCase with metrics instrumentation.
type memberUseCaseWithMetrics struct {
	next    MemberUseCase
	metrics metrics.BusinessMetrics
}

// NewMemberUseCaseWithMetrics wraps a MemberUseCase with metrics recording.
func NewMemberUseCaseWithMetrics(useCase MemberUseCase, m metrics.BusinessMetrics) MemberUseCase {
	return &memberUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (m *memberUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	m.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	m.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// List records metrics for member listing.
func (m *memberUseCaseWithMetrics) List(ctx context.Context) ([]*domain.Member, error) {
	start := time.Now()
	members, err := m.next.List(ctx)
	m.record(ctx, "member_list", start, err)
	return members, err
}

// Get records metrics for member retrieval.
func (m *memberUseCaseWithMetrics) Get(ctx context.Context, id int64) (*domain.Member, error) {
	start := time.Now()
	member, err := m.next.Get(ctx, id)
	m.record(ctx, "member_get", start, err)
	return member, err
}

// Register records metrics for member registration.
func (m *memberUseCaseWithMetrics) Register(
	ctx context.Context,
	input *domain.RegisterMemberInput,
) (*domain.Member, error) {
	start := time.Now()
	member, err := m.next.Register(ctx, input)
	m.record(ctx, "member_register", start, err)
	return member, err
}

// Update records metrics for member updates.
func (m *memberUseCaseWithMetrics) Update(
	ctx context.Context,
	id int64,
	input *domain.UpdateMemberInput,
) (*domain.Member, error) {
	start := time.Now()
	member, err := m.next.Update(ctx, id, input)
	m.record(ctx, "member_update", start, err)
	return member, err
}

// Delete records metrics for member deletion.
func (m *memberUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := m.next.Delete(ctx, id)
	m.record(ctx, "member_delete", start, err)
	return err
}
