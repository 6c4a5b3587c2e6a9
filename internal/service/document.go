package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports"
)

type DocumentService struct {
	documentRepo ports.DocumentRepo
	userRepo     ports.UserRepo
	logger       logger.Logger
}

func NewDocumentService(documentRepo ports.DocumentRepo, userRepo ports.UserRepo, logger logger.Logger) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// Share records a document against a worker and notifies them through the
// outbox in the same write.
func (s *DocumentService) Share(ctx context.Context, input domain.CreateDocumentInput) (*domain.Document, error) {
	if input.Name == "" || input.URL == "" {
		return nil, fmt.Errorf("%w: document name and url are required", domain.ErrValidation)
	}
	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	doc := &domain.Document{
		ID:         uuid.New().String(),
		Name:       input.Name,
		URL:        input.URL,
		UserID:     input.UserID,
		UploadedBy: input.UploadedBy,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("share document: %w", err)
	}

	s.logger.Info("document shared",
		logger.String("document_id", doc.ID),
		logger.String("user_id", doc.UserID),
	)
	return doc, nil
}

func (s *DocumentService) ListByUser(ctx context.Context, userID string) ([]*domain.Document, error) {
	return s.documentRepo.ListByUser(ctx, userID)
}
