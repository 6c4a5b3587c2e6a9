package handler

import (
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"

	"github.com/onRAM-ai/gcg-portal/internal/handler/dto"
)

// SearchPlaces proxies a venue text search. The upstream API key never
// reaches the client.
func (h *Handler) SearchPlaces(c *ginext.Context) {
	if !h.placesClient.Enabled() {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "places lookup is not configured"})
		return
	}

	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing query parameter"})
		return
	}

	results, err := h.placesClient.Search(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"results": results})
}

func (h *Handler) PlacePhoto(c *ginext.Context) {
	if !h.placesClient.Enabled() {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "places lookup is not configured"})
		return
	}

	ref := c.Query("photo_reference")
	if ref == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing photo_reference parameter"})
		return
	}

	maxWidth := 400
	if raw := c.Query("max_width"); raw != "" {
		w, err := strconv.Atoi(raw)
		if err != nil || w < 1 || w > 1600 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "max_width must be between 1 and 1600"})
			return
		}
		maxWidth = w
	}

	data, contentType, err := h.placesClient.Photo(c.Request.Context(), ref, maxWidth)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	c.Data(http.StatusOK, contentType, data)
}
