package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/handler/dto"
	"github.com/onRAM-ai/gcg-portal/internal/middleware"
)

func (h *Handler) ShareDocument(c *ginext.Context) {
	var req dto.ShareDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateDocumentInput{
		Name:       req.Name,
		URL:        req.URL,
		UserID:     req.UserID,
		UploadedBy: middleware.Session(c).UserID,
	}

	doc, err := h.documentService.Share(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

func (h *Handler) ListUserDocuments(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	sess := middleware.Session(c)
	if sess.Role == domain.RoleUser && sess.UserID != userID {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	docs, err := h.documentService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, dto.ToDocumentResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}
