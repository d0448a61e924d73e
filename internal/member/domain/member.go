// Package domain defines the member registry entities, inputs and errors.
package domain

import (
	validation "github.com/jellydator/validation"

	"github.com/sijosaji/kitchensink/internal/errors"
	appValidation "github.com/sijosaji/kitchensink/internal/validation"
)

const (
	// CollectionName is the MongoDB collection holding members.
	CollectionName = "members"

	// SequenceName is the counter that issues member IDs.
	SequenceName = "MEMBER_ID_SEQUENCE"
)

// Member is a registered person. Email is unique across members.
type Member struct {
	ID          int64  `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email" bson:"email"`
	PhoneNumber string `json:"phoneNumber" bson:"phoneNumber"`
}

// Domain-specific errors for member operations.
var (
	// ErrMemberNotFound indicates the requested member does not exist.
	ErrMemberNotFound = errors.WithReason(errors.ErrNotFound, "Member not found")

	// ErrEmailInUse indicates another member already owns the requested email.
	ErrEmailInUse = errors.WithReason(errors.ErrConflict, "Email is already in use by another member")

	// ErrMemberAlreadyExists indicates a unique index rejected the write.
	ErrMemberAlreadyExists = errors.Wrap(errors.ErrConflict, "member already exists")
)

const (
	nameMinLength  = 1
	nameMaxLength  = 25
	phoneMinLength = 10
	phoneMaxLength = 12
)

var (
	errMustNotBeNull  = validation.NewError("validation_required", "must not be null")
	errMustNotBeEmpty = validation.NewError("validation_not_empty", "must not be empty")
	errNameSize       = validation.NewError("validation_length", "size must be between 1 and 25")
	errPhoneSize      = validation.NewError("validation_length", "size must be between 10 and 12")
)

// RegisterMemberInput contains the data for a new member. Every field is required.
type RegisterMemberInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// Validate checks the input and aggregates violations per field.
func (i *RegisterMemberInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.Name,
			validation.Required.ErrorObject(errMustNotBeNull),
			validation.RuneLength(nameMinLength, nameMaxLength).ErrorObject(errNameSize),
			appValidation.NoDigits,
		),
		validation.Field(&i.Email,
			validation.Required.ErrorObject(errMustNotBeEmpty),
			appValidation.Email,
		),
		validation.Field(&i.PhoneNumber,
			validation.Required.ErrorObject(errMustNotBeNull),
			validation.RuneLength(phoneMinLength, phoneMaxLength).ErrorObject(errPhoneSize),
			appValidation.Digits,
		),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateMemberInput contains a partial update. Nil fields are left unchanged.
type UpdateMemberInput struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
}

// Validate applies the registration rules to the fields that are present.
// A present but empty field is rejected.
func (i *UpdateMemberInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.Name,
			validation.NilOrNotEmpty.ErrorObject(errMustNotBeNull),
			validation.RuneLength(nameMinLength, nameMaxLength).ErrorObject(errNameSize),
			appValidation.NoDigits,
		),
		validation.Field(&i.Email,
			validation.NilOrNotEmpty.ErrorObject(errMustNotBeEmpty),
			appValidation.Email,
		),
		validation.Field(&i.PhoneNumber,
			validation.NilOrNotEmpty.ErrorObject(errMustNotBeNull),
			validation.RuneLength(phoneMinLength, phoneMaxLength).ErrorObject(errPhoneSize),
			appValidation.Digits,
		),
	)
	return appValidation.WrapValidationError(err)
}

// Apply copies the present fields onto m.
func (i *UpdateMemberInput) Apply(m *Member) {
	if i.Name != nil {
		m.Name = *i.Name
	}
	if i.Email != nil {
		m.Email = *i.Email
	}
	if i.PhoneNumber != nil {
		m.PhoneNumber = *i.PhoneNumber
	}
}

// ChangesEmail reports whether the update moves m to a different email.
func (i *UpdateMemberInput) ChangesEmail(m *Member) bool {
	return i.Email != nil && *i.Email != m.Email
}
