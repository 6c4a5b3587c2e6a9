package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/handler/dto"
	"github.com/onRAM-ai/gcg-portal/internal/middleware"
)

// Register creates an account. Without an invite token the new account is
// always a plain user; elevated roles only come from an invitation, whose
// email also overrides the one in the request body.
func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Email:     req.Email,
		Password:  req.Password,
		Role:      domain.RoleUser,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}

	if req.InviteToken != "" {
		inv, err := h.invitationService.Validate(c.Request.Context(), req.InviteToken)
		if err != nil {
			h.handleError(c, err)
			return
		}
		input.Role = inv.Role
		input.Email = inv.Email
	}

	user, token, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// The invitation is only consumed once the account exists; a registration
	// that fails validation above leaves the token usable.
	if req.InviteToken != "" {
		if _, err := h.invitationService.Accept(c.Request.Context(), req.InviteToken); err != nil {
			h.handleError(c, err)
			return
		}
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

func (h *Handler) Logout(c *ginext.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, ginext.H{"status": "logged out"})
}

// Me returns the authenticated caller's own record.
func (h *Handler) Me(c *ginext.Context) {
	sess := middleware.Session(c)

	user, err := h.userService.Get(c.Request.Context(), sess.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) setSessionCookie(c *ginext.Context, token string) {
	c.SetCookie(middleware.SessionCookie, token, 24*60*60, "/", "", false, true)
}
