package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/onRAM-ai/gcg-portal/internal/handler/dto"
	"github.com/onRAM-ai/gcg-portal/internal/middleware"
)

func (h *Handler) ListNotifications(c *ginext.Context) {
	unreadOnly := c.Query("unread") == "true"

	items, err := h.notificationService.List(c.Request.Context(), middleware.Session(c).UserID, unreadOnly)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(items))
	for _, n := range items {
		resp = append(resp, dto.ToNotificationResponse(n))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) MarkNotificationRead(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid notification id"})
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id, middleware.Session(c).UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "read"})
}
