package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/handler/dto"
	"github.com/onRAM-ai/gcg-portal/internal/middleware"
)

// SaveAvailability replaces the caller's availability preferences.
func (h *Handler) SaveAvailability(c *ginext.Context) {
	var req dto.SaveAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	pref := &domain.AvailabilityPreference{
		UserID:              middleware.Session(c).UserID,
		AvailableDates:      req.AvailableDates,
		PreferredSuburbs:    req.PreferredSuburbs,
		PreferredVenues:     req.PreferredVenues,
		PreferredShiftTypes: req.PreferredShiftTypes,
		MaxShiftsPerWeek:    req.MaxShiftsPerWeek,
		Notes:               req.Notes,
	}

	if err := h.availabilityService.Save(c.Request.Context(), pref); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(pref))
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	pref, err := h.availabilityService.Get(c.Request.Context(), middleware.Session(c).UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if pref == nil {
		c.JSON(http.StatusOK, ginext.H{})
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(pref))
}
