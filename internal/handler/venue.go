package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/handler/dto"
	"github.com/onRAM-ai/gcg-portal/internal/middleware"
)

func (h *Handler) CreateVenue(c *ginext.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateVenueInput{
		Name:    req.Name,
		Address: req.Address,
		OwnerID: middleware.Session(c).UserID,
	}

	venue, err := h.venueService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) ListVenues(c *ginext.Context) {
	venues, err := h.venueService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetVenue(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	venue, err := h.venueService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

// UpdateVenue changes venue details. Status changes stay admin-only; venue
// managers may edit the rest of their own venue.
func (h *Handler) UpdateVenue(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	var req dto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sess := middleware.Session(c)
	if sess.Role != domain.RoleAdmin {
		if req.Status != nil {
			h.handleError(c, domain.ErrForbidden)
			return
		}
		ok, err := h.venueService.ManagesVenue(c.Request.Context(), id, sess.UserID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		if !ok {
			h.handleError(c, domain.ErrForbidden)
			return
		}
	}

	input := domain.UpdateVenueInput{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
	}
	if req.Status != nil {
		status := domain.VenueStatus(*req.Status)
		input.Status = &status
	}

	venue, err := h.venueService.Update(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *Handler) AddVenueManager(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	var req dto.AddManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.venueService.AddManager(c.Request.Context(), id, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"status": "manager added"})
}
