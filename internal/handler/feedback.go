package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/handler/dto"
	"github.com/onRAM-ai/gcg-portal/internal/middleware"
)

func (h *Handler) CreateFeedback(c *ginext.Context) {
	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sess := middleware.Session(c)
	if sess.Role != domain.RoleAdmin {
		ok, err := h.venueService.ManagesVenue(c.Request.Context(), req.VenueID, sess.UserID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		if !ok {
			h.handleError(c, domain.ErrForbidden)
			return
		}
	}

	input := domain.CreateFeedbackInput{
		VenueID:      req.VenueID,
		UserID:       req.UserID,
		Rating:       req.Rating,
		Comment:      req.Comment,
		MayNotReturn: req.MayNotReturn,
	}

	fb, err := h.feedbackService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFeedbackResponse(fb))
}

func (h *Handler) ListFeedback(c *ginext.Context) {
	var filter domain.FeedbackFilter
	if venueID := c.Query("venue_id"); venueID != "" {
		filter.VenueID = &venueID
	}
	if status := c.Query("status"); status != "" {
		s := domain.FeedbackStatus(status)
		filter.Status = &s
	}

	items, err := h.feedbackService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.FeedbackResponse, 0, len(items))
	for _, f := range items {
		resp = append(resp, dto.ToFeedbackResponse(f))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ReviewFeedback(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid feedback id"})
		return
	}

	var req dto.ReviewFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.ReviewFeedbackInput{
		ID:         id,
		ReviewerID: middleware.Session(c).UserID,
		Status:     domain.FeedbackStatus(req.Status),
		Notes:      req.Notes,
	}

	fb, err := h.feedbackService.Review(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFeedbackResponse(fb))
}
