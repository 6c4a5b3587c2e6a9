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

func (h *Handler) CreateShift(c *ginext.Context) {
	var req dto.CreateShiftRequest
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

	input := domain.CreateShiftInput{
		VenueID:       req.VenueID,
		StartTime:     startTime,
		EndTime:       endTime,
		WorkersNeeded: req.WorkersNeeded,
		HourlyRate:    req.HourlyRate,
		Notes:         req.Notes,
	}

	shift, err := h.shiftService.Create(c.Request.Context(), middleware.Session(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToShiftResponse(shift))
}

func (h *Handler) ListShifts(c *ginext.Context) {
	var filter domain.ShiftFilter
	if venueID := c.Query("venue_id"); venueID != "" {
		filter.VenueID = &venueID
	}
	if status := c.Query("status"); status != "" {
		s := domain.ShiftStatus(status)
		filter.Status = &s
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from format, expected RFC3339"})
			return
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid to format, expected RFC3339"})
			return
		}
		filter.To = &t
	}

	shifts, err := h.shiftService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		resp = append(resp, dto.ToShiftResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetShift(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid shift id"})
		return
	}

	details, err := h.shiftService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftDetailsResponse(details))
}

// AssignShift books a worker onto a shift. Workers sign themselves up; venue
// and admin callers may name another worker in the body.
func (h *Handler) AssignShift(c *ginext.Context) {
	shiftID := c.Param("id")
	if _, err := uuid.Parse(shiftID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid shift id"})
		return
	}

	sess := middleware.Session(c)
	userID := sess.UserID
	if sess.Role != domain.RoleUser {
		var req dto.AssignShiftRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		userID = req.UserID
	}

	assignment, err := h.shiftService.Assign(c.Request.Context(), shiftID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssignmentResponse(assignment))
}

func (h *Handler) UpdateAssignment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid assignment id"})
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.shiftService.UpdateAssignmentStatus(c.Request.Context(), id, domain.AssignmentStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

func (h *Handler) BulkShifts(c *ginext.Context) {
	var req dto.BulkShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.BulkShiftInput{
		Action:   domain.BulkShiftAction(req.Action),
		ShiftIDs: req.ShiftIDs,
	}
	if req.NewDate != "" {
		d, err := time.Parse("2006-01-02", req.NewDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid new_date format, expected YYYY-MM-DD"})
			return
		}
		input.NewDate = &d
	}

	affected, err := h.shiftService.Bulk(c.Request.Context(), middleware.Session(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BulkShiftResponse{Action: req.Action, Affected: affected})
}
