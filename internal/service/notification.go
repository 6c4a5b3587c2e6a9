package service

import (
	"context"

	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports"
)

type NotificationService struct {
	notificationRepo ports.NotificationRepo
	logger           logger.Logger
}

func NewNotificationService(notificationRepo ports.NotificationRepo, logger logger.Logger) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (s *NotificationService) List(ctx context.Context, userID string, unreadOnly bool) ([]*domain.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID, unreadOnly)
}

// MarkRead only touches the caller's own notifications; a foreign or unknown
// id reports not found.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.notificationRepo.MarkRead(ctx, id, userID)
}
