package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/handler/dto"
)

// AdminSetup bootstraps the first admin account. The route is only mounted
// in development; production admins come from invitations.
func (h *Handler) AdminSetup(c *ginext.Context) {
	if !h.development {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
		return
	}

	var req dto.AdminSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.RoleAdmin,
	}

	user, token, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}
