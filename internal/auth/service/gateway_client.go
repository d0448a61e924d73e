package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/metric"

	authDomain "github.com/sijosaji/kitchensink/internal/auth/domain"
	apperrors "github.com/sijosaji/kitchensink/internal/errors"
)

const (
	authServiceName      = "auth"
	rateLimitServiceName = "rate-limit"

	// maxDrainBytes bounds how much of an ignored response body is read before closing.
	maxDrainBytes = 64 << 10
)

// NewHTTPClient builds the shared outbound client for both gates.
// The timeout turns a hung upstream into an opaque transport failure.
func NewHTTPClient(timeout time.Duration, meterProvider metric.MeterProvider) *http.Client {
	opts := []otelhttp.Option{}
	if meterProvider != nil {
		opts = append(opts, otelhttp.WithMeterProvider(meterProvider))
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport, opts...),
	}
}

type authClient struct {
	httpClient *http.Client
	endpoint   string
}

// NewAuthClient creates an AuthClient posting to endpoint.
func NewAuthClient(httpClient *http.Client, endpoint string) AuthClient {
	return &authClient{
		httpClient: httpClient,
		endpoint:   endpoint,
	}
}

// Validate sends {accessToken, roles} and decodes {userId} from a 2xx response.
func (a *authClient) Validate(
	ctx context.Context,
	accessToken string,
	capabilities authDomain.Capabilities,
) (*authDomain.AuthorizationDecision, error) {
	payload, err := json.Marshal(authDomain.ValidationRequest{
		AccessToken: accessToken,
		Roles:       capabilities.Strings(),
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode auth validation request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build auth validation request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, "auth service call failed")
	}
	defer closeBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstreamError(authServiceName, resp)
	}

	var decision authDomain.AuthorizationDecision
	if err := json.NewDecoder(resp.Body).Decode(&decision); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode auth service response")
	}

	return &decision, nil
}

type rateLimitClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewRateLimitClient creates a RateLimitClient addressing {baseURL}/{userID}.
func NewRateLimitClient(httpClient *http.Client, baseURL string) RateLimitClient {
	return &rateLimitClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// Consume issues the bodiless PUT for userID.
func (r *rateLimitClient) Consume(ctx context.Context, userID string) error {
	target := r.baseURL + "/" + url.PathEscape(userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, http.NoBody)
	if err != nil {
		return apperrors.Wrap(err, "failed to build rate limit request")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(err, "rate limit service call failed")
	}
	defer closeBody(resp)

	if resp.StatusCode >= http.StatusBadRequest {
		return upstreamError(rateLimitServiceName, resp)
	}

	return nil
}

func upstreamError(service string, resp *http.Response) *apperrors.UpstreamError {
	return &apperrors.UpstreamError{
		Service:    service,
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
	}
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
	_ = resp.Body.Close()
}
