package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/handler/dto"
	"github.com/onRAM-ai/gcg-portal/internal/middleware"
)

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time format, expected RFC3339"})
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time format, expected RFC3339"})
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

	input := domain.CreateBookingInput{
		VenueID:       req.VenueID,
		EntertainerID: req.EntertainerID,
		StartTime:     startTime,
		EndTime:       endTime,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListVenueBookings(c *ginext.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	bookings, err := h.bookingService.ListByVenue(c.Request.Context(), venueID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// ListMyBookings returns the authenticated entertainer's own bookings.
func (h *Handler) ListMyBookings(c *ginext.Context) {
	sess := middleware.Session(c)

	bookings, err := h.bookingService.ListByEntertainer(c.Request.Context(), sess.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}
