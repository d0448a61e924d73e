// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. Use cases and gates return these errors and the
// httputil package is the only place that turns them into HTTP responses.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the request lacks valid authentication credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the authenticated caller doesn't have the required capabilities.
	ErrForbidden = errors.New("forbidden")

	// ErrTooManyRequests indicates the caller exceeded its request quota.
	ErrTooManyRequests = errors.New("too many requests")
)

// ReasonError attaches a client-facing reason to one of the standard domain errors.
// The reason is what ends up in the response body; Kind decides the status code.
type ReasonError struct {
	Kind   error
	Reason string
}

// Error implements the error interface.
func (e *ReasonError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Kind)
}

// Unwrap exposes Kind so errors.Is keeps matching the standard domain errors.
func (e *ReasonError) Unwrap() error {
	return e.Kind
}

// WithReason returns kind decorated with a client-facing reason.
func WithReason(kind error, reason string) error {
	return &ReasonError{Kind: kind, Reason: reason}
}

// ValidationError aggregates field violations from a single request.
// Fields is keyed by the field path as seen by the client (e.g., "phoneNumber").
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface with a stable, sorted rendering of the violations.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets callers match validation failures with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// UpstreamError is returned when an external service answered with a non-success status.
// The response headers are kept so hints such as Retry-After can be forwarded to the client.
type UpstreamError struct {
	Service    string
	StatusCode int
	Header     http.Header
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s service responded with status %d", e.Service, e.StatusCode)
}

// ServerFault reports whether the upstream failed on its own side (5xx).
func (e *UpstreamError) ServerFault() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// RetryAfter returns the upstream Retry-After header verbatim, or "" when absent.
func (e *UpstreamError) RetryAfter() string {
	if e.Header == nil {
		return ""
	}
	return e.Header.Get("Retry-After")
}

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
