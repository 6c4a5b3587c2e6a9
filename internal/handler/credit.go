package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/handler/dto"
	"github.com/onRAM-ai/gcg-portal/internal/middleware"
)

// ApplyCredit posts a balance-changing transaction against a user.
func (h *Handler) ApplyCredit(c *ginext.Context) {
	var req dto.ApplyCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	balance, record, err := h.creditService.Apply(c.Request.Context(),
		req.UserID, req.Amount, domain.CreditTransactionType(req.Type))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{
		"balance":     balance,
		"transaction": dto.ToCreditTransactionResponse(record),
	})
}

func (h *Handler) CreditHistory(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	sess := middleware.Session(c)
	if sess.Role != domain.RoleAdmin && sess.UserID != userID {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	items, err := h.creditService.History(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CreditTransactionResponse, 0, len(items))
	for _, t := range items {
		resp = append(resp, dto.ToCreditTransactionResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

// MyBalance returns the caller's current credit balance.
func (h *Handler) MyBalance(c *ginext.Context) {
	sess := middleware.Session(c)

	balance, err := h.creditService.Balance(c.Request.Context(), sess.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{UserID: sess.UserID, Balance: balance})
}
