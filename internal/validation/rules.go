// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/sijosaji/kitchensink/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	digitsRegex = regexp.MustCompile(`^[0-9]+$`)

	containsDigitRegex = regexp.MustCompile(`[0-9]`)
)

// WrapValidationError converts jellydator validation errors into the domain ValidationError,
// keeping one message per field path. Any other error is wrapped as ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if apperrors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for field, fieldErr := range fieldErrs {
			if fieldErr == nil {
				continue
			}
			fields[field] = fieldErr.Error()
		}
		if len(fields) == 0 {
			return nil
		}
		return &apperrors.ValidationError{Fields: fields}
	}

	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a well-formed email address"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// NoDigits rejects strings containing any decimal digit.
var NoDigits = validation.NewStringRuleWithError(
	func(s string) bool {
		return !containsDigitRegex.MatchString(s)
	},
	validation.NewError("validation_no_digits", "Must not contain numbers"),
)

// Digits accepts only strings made of decimal digits.
var Digits = validation.NewStringRuleWithError(
	func(s string) bool {
		return digitsRegex.MatchString(s)
	},
	validation.NewError("validation_digits", "numeric value out of bounds (<12 digits>.<0 digits> expected)"),
)
