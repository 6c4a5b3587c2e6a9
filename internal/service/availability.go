package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports"
)

type AvailabilityService struct {
	availabilityRepo ports.AvailabilityRepo
	logger           logger.Logger
}

func NewAvailabilityService(availabilityRepo ports.AvailabilityRepo, logger logger.Logger) *AvailabilityService {
	return &AvailabilityService{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Save replaces the worker's preference record wholesale.
func (s *AvailabilityService) Save(ctx context.Context, pref *domain.AvailabilityPreference) error {
	for _, d := range pref.AvailableDates {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return fmt.Errorf("%w: bad date %q, want YYYY-MM-DD", domain.ErrValidation, d)
		}
	}
	if pref.MaxShiftsPerWeek < 0 {
		return fmt.Errorf("%w: max shifts per week cannot be negative", domain.ErrValidation)
	}
	pref.UpdatedAt = time.Now().UTC()

	if err := s.availabilityRepo.Upsert(ctx, pref); err != nil {
		return fmt.Errorf("save availability: %w", err)
	}

	s.logger.Info("availability saved",
		logger.String("user_id", pref.UserID),
		logger.Int("dates", len(pref.AvailableDates)),
	)
	return nil
}

// Get returns nil with no error when the worker never saved preferences.
func (s *AvailabilityService) Get(ctx context.Context, userID string) (*domain.AvailabilityPreference, error) {
	return s.availabilityRepo.GetByUser(ctx, userID)
}
