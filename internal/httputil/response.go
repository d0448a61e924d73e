// Package httputil provides HTTP utility functions for request and response handling.
// It owns the translation of domain and upstream failures into client responses.
package httputil

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/sijosaji/kitchensink/internal/errors"
)

// Client-facing messages. No other package hardcodes a user-facing error message.
const (
	MessageUnauthenticated  = "Provided request is unauthenticated"
	MessageUnauthorized     = "Provided request is unauthorized"
	MessageTooManyRequests  = "Too many requests please try again later"
	MessageDuplicateField   = "Check if any field on which uniqueness is defined is being duplicated"
	MessageNotFound         = "The requested resource was not found"
	MessageUpstreamFailure  = "Upstream service failed"
	MessageUnexpectedFailed = "The request could not be processed"
)

// statusMessages is the fixed table for failures that carry an HTTP-like status.
var statusMessages = map[int]string{
	http.StatusUnauthorized:    MessageUnauthenticated,
	http.StatusForbidden:       MessageUnauthorized,
	http.StatusTooManyRequests: MessageTooManyRequests,
}

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NormalizedError is the response-bound form of any failure.
type NormalizedError struct {
	StatusCode int
	Message    string
	// Fields is set only for validation failures and replaces the body entirely.
	Fields map[string]string
	// RetryAfter is forwarded as the Retry-After header when non-empty.
	RetryAfter string
}

// Body returns the JSON body for the normalized error.
func (n NormalizedError) Body() any {
	if n.Fields != nil {
		return n.Fields
	}
	return ErrorResponse{Error: n.Message}
}

// StatusMessage looks up the client message for an HTTP-like status code.
// A status outside the table means a mapping is missing, so it panics instead of
// guessing a response.
func StatusMessage(statusCode int) string {
	message, ok := statusMessages[statusCode]
	if !ok {
		panic(fmt.Sprintf("httputil: no error message mapped for status %d", statusCode))
	}
	return message
}

// Translate maps any failure to its NormalizedError.
//
// Recognized families, checked in order:
//   - *apperrors.ValidationError: 400 with the per-field violations as body
//   - *apperrors.UpstreamError: 5xx becomes 502, 4xx goes through the status table
//   - ErrUnauthorized / ErrForbidden / ErrTooManyRequests: status table
//   - ErrConflict: 409, reason if present, otherwise the uniqueness message
//   - ErrNotFound: 404, reason if present
//   - ErrInvalidInput: 400 with the error text
//   - anything else: 400 with a generic message
func Translate(err error) NormalizedError {
	var validationErr *apperrors.ValidationError
	if apperrors.As(err, &validationErr) {
		return NormalizedError{StatusCode: http.StatusBadRequest, Fields: validationErr.Fields}
	}

	var upstreamErr *apperrors.UpstreamError
	if apperrors.As(err, &upstreamErr) {
		if upstreamErr.ServerFault() {
			return NormalizedError{StatusCode: http.StatusBadGateway, Message: MessageUpstreamFailure}
		}
		normalized := NormalizedError{
			StatusCode: upstreamErr.StatusCode,
			Message:    StatusMessage(upstreamErr.StatusCode),
		}
		if upstreamErr.StatusCode == http.StatusTooManyRequests {
			normalized.RetryAfter = upstreamErr.RetryAfter()
		}
		return normalized
	}

	switch {
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		return fromStatus(http.StatusUnauthorized)
	case apperrors.Is(err, apperrors.ErrForbidden):
		return fromStatus(http.StatusForbidden)
	case apperrors.Is(err, apperrors.ErrTooManyRequests):
		return fromStatus(http.StatusTooManyRequests)
	case apperrors.Is(err, apperrors.ErrConflict):
		return NormalizedError{StatusCode: http.StatusConflict, Message: reasonOr(err, MessageDuplicateField)}
	case apperrors.Is(err, apperrors.ErrNotFound):
		return NormalizedError{StatusCode: http.StatusNotFound, Message: reasonOr(err, MessageNotFound)}
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return NormalizedError{StatusCode: http.StatusBadRequest, Message: reasonOr(err, err.Error())}
	default:
		return NormalizedError{StatusCode: http.StatusBadRequest, Message: MessageUnexpectedFailed}
	}
}

// HandleErrorGin translates err and writes the response using Gin.
// The full error chain is logged; the client only sees the normalized message.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	normalized := Translate(err)

	if logger != nil {
		level := slog.LevelWarn
		if normalized.StatusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", normalized.StatusCode),
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
		)
	}

	if normalized.RetryAfter != "" {
		c.Header("Retry-After", normalized.RetryAfter)
	}
	c.AbortWithStatusJSON(normalized.StatusCode, normalized.Body())
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters using Gin.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

func fromStatus(statusCode int) NormalizedError {
	return NormalizedError{StatusCode: statusCode, Message: StatusMessage(statusCode)}
}

func reasonOr(err error, fallback string) string {
	var reasonErr *apperrors.ReasonError
	if apperrors.As(err, &reasonErr) && reasonErr.Reason != "" {
		return reasonErr.Reason
	}
	return fallback
}
