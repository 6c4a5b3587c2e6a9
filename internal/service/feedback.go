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

type FeedbackService struct {
	feedbackRepo ports.FeedbackRepo
	venueRepo    ports.VenueRepo
	logger       logger.Logger
}

func NewFeedbackService(feedbackRepo ports.FeedbackRepo, venueRepo ports.VenueRepo, logger logger.Logger) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		venueRepo:    venueRepo,
		logger:       logger,
	}
}

// Create records venue feedback about a worker. Flagging a worker as
// may-not-return notifies every admin via the outbox in the same write.
func (s *FeedbackService) Create(ctx context.Context, input domain.CreateFeedbackInput) (*domain.Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	if _, err := s.venueRepo.GetByID(ctx, input.VenueID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	fb := &domain.Feedback{
		ID:           uuid.New().String(),
		VenueID:      input.VenueID,
		UserID:       input.UserID,
		Rating:       input.Rating,
		Comment:      input.Comment,
		MayNotReturn: input.MayNotReturn,
		Status:       domain.FeedbackStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}

	if fb.MayNotReturn {
		s.logger.Warn("worker flagged as may-not-return",
			logger.String("feedback_id", fb.ID),
			logger.String("user_id", fb.UserID),
			logger.String("venue_id", fb.VenueID),
		)
	}
	return fb, nil
}

func (s *FeedbackService) Get(ctx context.Context, id string) (*domain.Feedback, error) {
	return s.feedbackRepo.GetByID(ctx, id)
}

func (s *FeedbackService) List(ctx context.Context, filter domain.FeedbackFilter) ([]*domain.Feedback, error) {
	return s.feedbackRepo.List(ctx, filter)
}

// Review moves a feedback item out of PENDING.
func (s *FeedbackService) Review(ctx context.Context, input domain.ReviewFeedbackInput) (*domain.Feedback, error) {
	switch input.Status {
	case domain.FeedbackStatusReviewed, domain.FeedbackStatusResolved:
	default:
		return nil, fmt.Errorf("%w: review status must be REVIEWED or RESOLVED", domain.ErrValidation)
	}

	fb, err := s.feedbackRepo.Review(ctx, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info("feedback reviewed",
		logger.String("feedback_id", fb.ID),
		logger.String("status", string(fb.Status)),
		logger.String("reviewer_id", input.ReviewerID),
	)
	return fb, nil
}
