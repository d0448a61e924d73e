// Package dto provides data transfer objects for the member HTTP layer.
package dto

import (
	"github.com/sijosaji/kitchensink/internal/member/domain"
)

// CreateMemberRequest is the body of POST /kitchensink/rest/members.
type CreateMemberRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// UpdateMemberRequest is the body of PATCH /kitchensink/rest/members/:id.
// Omitted fields are left unchanged.
type UpdateMemberRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
}

// ToRegisterMemberInput converts the request into use case input.
func ToRegisterMemberInput(req CreateMemberRequest) *domain.RegisterMemberInput {
	return &domain.RegisterMemberInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
}

// ToUpdateMemberInput converts the request into use case input.
func ToUpdateMemberInput(req UpdateMemberRequest) *domain.UpdateMemberInput {
	return &domain.UpdateMemberInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
}
