// Package http provides HTTP handlers for the member registry.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sijosaji/kitchensink/internal/httputil"
	"github.com/sijosaji/kitchensink/internal/member/http/dto"
	memberUseCase "github.com/sijosaji/kitchensink/internal/member/usecase"
)

// MemberHandler handles HTTP requests for member operations.
// It runs behind the authorization and rate-limit gates.
type MemberHandler struct {
	memberUseCase memberUseCase.MemberUseCase
	logger        *slog.Logger
}

// NewMemberHandler creates a new member handler.
func NewMemberHandler(memberUseCase memberUseCase.MemberUseCase, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{
		memberUseCase: memberUseCase,
		logger:        logger,
	}
}

// ListHandler returns all members ordered by name.
// GET /kitchensink/rest/members - Requires MEMBERS:READ.
func (h *MemberHandler) ListHandler(c *gin.Context) {
	members, err := h.memberUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMembersToResponse(members))
}

// GetHandler returns one member.
// GET /kitchensink/rest/members/:id - Requires MEMBERS:READ.
func (h *MemberHandler) GetHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	member, err := h.memberUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMemberToResponse(member))
}

// CreateHandler registers a new member.
// POST /kitchensink/rest/members - Requires MEMBERS:WRITE.
// Returns 201 Created with the stored member.
func (h *MemberHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid request body: %w", err), h.logger)
		return
	}

	member, err := h.memberUseCase.Register(c.Request.Context(), dto.ToRegisterMemberInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapMemberToResponse(member))
}

// UpdateHandler applies a partial update to a member.
// PATCH /kitchensink/rest/members/:id - Requires MEMBERS:WRITE.
func (h *MemberHandler) UpdateHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid request body: %w", err), h.logger)
		return
	}

	member, err := h.memberUseCase.Update(c.Request.Context(), id, dto.ToUpdateMemberInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMemberToResponse(member))
}

// DeleteHandler removes a member.
// DELETE /kitchensink/rest/members/:id - Requires MEMBERS:DELETE.
// Returns 204 No Content.
func (h *MemberHandler) DeleteHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.memberUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MemberHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid member id: must be a positive integer"), h.logger)
		return 0, false
	}
	return id, true
}
