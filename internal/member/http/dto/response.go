package dto

import (
	"github.com/sijosaji/kitchensink/internal/member/domain"
)

// MemberResponse is the wire shape of a member.
type MemberResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// MapMemberToResponse converts a domain member to its response DTO.
func MapMemberToResponse(member *domain.Member) MemberResponse {
	return MemberResponse{
		ID:          member.ID,
		Name:        member.Name,
		Email:       member.Email,
		PhoneNumber: member.PhoneNumber,
	}
}

// MapMembersToResponse converts a list of members, never returning nil.
func MapMembersToResponse(members []*domain.Member) []MemberResponse {
	response := make([]MemberResponse, 0, len(members))
	for _, member := range members {
		response = append(response, MapMemberToResponse(member))
	}
	return response
}
