package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/handler/dto"
	"github.com/onRAM-ai/gcg-portal/internal/middleware"
)

func (h *Handler) CreateInvitation(c *ginext.Context) {
	var req dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	inv, err := h.invitationService.Create(c.Request.Context(),
		req.Email, domain.Role(req.Role), middleware.Session(c).UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvitationResponse(inv))
}

// ResendInvitation emails the signup link again for a pending invitation.
func (h *Handler) ResendInvitation(c *ginext.Context) {
	var req dto.ResendInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.invitationService.Resend(c.Request.Context(), req.Token); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "sent"})
}

// ValidateInvitation is the public endpoint the signup page calls to check a
// token before showing the form. The response omits the token itself.
func (h *Handler) ValidateInvitation(c *ginext.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing invitation token"})
		return
	}

	inv, err := h.invitationService.Validate(c.Request.Context(), token)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"email":      inv.Email,
		"role":       string(inv.Role),
		"expires_at": inv.ExpiresAt,
	})
}
