package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sijosaji/kitchensink/internal/auth/identity"
	authService "github.com/sijosaji/kitchensink/internal/auth/service"
	serviceMocks "github.com/sijosaji/kitchensink/internal/auth/service/mocks"
	"github.com/sijosaji/kitchensink/internal/auth/usecase"
	apperrors "github.com/sijosaji/kitchensink/internal/errors"
	"github.com/sijosaji/kitchensink/internal/metrics"
)

type recordedRequest struct {
	method string
	url    string
	body   []byte
}

// recordingTransport answers every request with a fixed status and remembers what it saw.
type recordingTransport struct {
	mu         sync.Mutex
	requests   []recordedRequest
	statusCode int
	header     http.Header
}

func (r *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		_ = req.Body.Close()
	}

	r.mu.Lock()
	r.requests = append(r.requests, recordedRequest{method: req.Method, url: req.URL.String(), body: body})
	r.mu.Unlock()

	header := r.header
	if header == nil {
		header = http.Header{}
	}

	return &http.Response{
		StatusCode: r.statusCode,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader("")),
		Request:    req,
	}, nil
}

func newRecordingGate(statusCode int, header http.Header) (usecase.RateLimitGate, *recordingTransport) {
	transport := &recordingTransport{statusCode: statusCode, header: header}
	client := authService.NewRateLimitClient(&http.Client{Transport: transport}, "http://svc/rate-limit")
	gate := usecase.NewRateLimitGate(client, metrics.NewNoOpBusinessMetrics(), 0, createTestLogger())
	return gate, transport
}

func scopedContext(userID string) (context.Context, *identity.Slot) {
	ctx, slot := identity.NewContext(context.Background())
	if userID != "" {
		slot.Set(userID)
	}
	return ctx, slot
}

func TestRateLimitGate_Enforce(t *testing.T) {
	t.Run("Success_SingleBodilessPutToIdentityPath", func(t *testing.T) {
		gate, transport := newRecordingGate(http.StatusOK, nil)
		ctx, slot := scopedContext("u1")

		err := gate.Enforce(ctx)

		require.NoError(t, err)
		require.Len(t, transport.requests, 1)
		assert.Equal(t, http.MethodPut, transport.requests[0].method)
		assert.Equal(t, "http://svc/rate-limit/u1", transport.requests[0].url)
		assert.Empty(t, transport.requests[0].body)
		_, ok := slot.Get()
		assert.False(t, ok, "slot must be cleared after success")
	})

	t.Run("Success_NoIdentityIsNoOp", func(t *testing.T) {
		gate, transport := newRecordingGate(http.StatusOK, nil)
		ctx, slot := scopedContext("")

		err := gate.Enforce(ctx)

		require.NoError(t, err)
		assert.Empty(t, transport.requests)
		_, ok := slot.Get()
		assert.False(t, ok)
	})

	t.Run("Success_NoScopeIsNoOp", func(t *testing.T) {
		gate, transport := newRecordingGate(http.StatusOK, nil)

		err := gate.Enforce(context.Background())

		require.NoError(t, err)
		assert.Empty(t, transport.requests)
	})

	t.Run("Success_ServerFaultFailsOpen", func(t *testing.T) {
		for _, status := range []int{
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		} {
			gate, transport := newRecordingGate(status, nil)
			ctx, slot := scopedContext("u1")

			err := gate.Enforce(ctx)

			assert.NoError(t, err, "status %d", status)
			assert.Len(t, transport.requests, 1)
			_, ok := slot.Get()
			assert.False(t, ok, "slot must be cleared after swallowed fault")
		}
	})

	t.Run("Error_ClientFaultPropagatesUnchanged", func(t *testing.T) {
		for _, status := range []int{
			http.StatusBadRequest,
			http.StatusUnauthorized,
			http.StatusForbidden,
			http.StatusTooManyRequests,
		} {
			gate, _ := newRecordingGate(status, http.Header{"Retry-After": []string{"60"}})
			ctx, slot := scopedContext("u1")

			err := gate.Enforce(ctx)

			var upstreamErr *apperrors.UpstreamError
			require.ErrorAs(t, err, &upstreamErr, "status %d", status)
			assert.Equal(t, status, upstreamErr.StatusCode)
			assert.Equal(t, "60", upstreamErr.RetryAfter())
			_, ok := slot.Get()
			assert.False(t, ok, "slot must be cleared after propagated fault")
		}
	})

	t.Run("Error_TransportFaultPropagates", func(t *testing.T) {
		mockClient := &serviceMocks.MockRateLimitClient{}
		gate := usecase.NewRateLimitGate(mockClient, metrics.NewNoOpBusinessMetrics(), 0, createTestLogger())
		ctx, slot := scopedContext("u1")
		transportErr := errors.New("dial tcp: i/o timeout")

		mockClient.On("Consume", ctx, "u1").Return(transportErr).Once()

		err := gate.Enforce(ctx)

		assert.Equal(t, transportErr, err)
		_, ok := slot.Get()
		assert.False(t, ok)
		mockClient.AssertExpectations(t)
	})

	t.Run("Success_RecordsOutcome", func(t *testing.T) {
		mockClient := &serviceMocks.MockRateLimitClient{}
		mockMetrics := &mockBusinessMetrics{}
		gate := usecase.NewRateLimitGate(mockClient, mockMetrics, 0, createTestLogger())
		ctx, _ := scopedContext("u1")

		mockClient.On("Consume", ctx, "u1").
			Return(&apperrors.UpstreamError{Service: "rate-limit", StatusCode: http.StatusBadGateway}).
			Once()
		mockMetrics.On("RecordOperation", ctx, "gateway", "rate_limit", "fail_open").Return().Once()

		require.NoError(t, gate.Enforce(ctx))
		mockMetrics.AssertExpectations(t)
	})
}

func TestRateLimitGate_FaultLogThrottled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	mockClient := &serviceMocks.MockRateLimitClient{}
	mockClient.On("Consume", mock.Anything, "u1").
		Return(&apperrors.UpstreamError{Service: "rate-limit", StatusCode: http.StatusServiceUnavailable})

	gate := usecase.NewRateLimitGate(mockClient, metrics.NewNoOpBusinessMetrics(), time.Hour, logger)

	for i := 0; i < 5; i++ {
		ctx, _ := scopedContext("u1")
		require.NoError(t, gate.Enforce(ctx))
	}

	assert.Equal(t, 1, strings.Count(buf.String(), "rate limit service failed"))
	mockClient.AssertNumberOfCalls(t, "Consume", 5)
}
