package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports/mocks"
)

func TestFeedbackService_Create(t *testing.T) {
	feedbackRepo := mocks.NewMockFeedbackRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	svc := NewFeedbackService(feedbackRepo, venueRepo, newTestLogger(t))

	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)

	var created *domain.Feedback
	feedbackRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, fb *domain.Feedback) { created = fb }).
		Return(nil)

	fb, err := svc.Create(context.Background(), domain.CreateFeedbackInput{
		VenueID:      "v1",
		UserID:       "u1",
		Rating:       4,
		Comment:      "great night",
		MayNotReturn: false,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.FeedbackStatusPending, fb.Status)
	assert.Equal(t, 4, created.Rating)
}

func TestFeedbackService_Create_RatingOutOfRange(t *testing.T) {
	svc := NewFeedbackService(mocks.NewMockFeedbackRepo(t), mocks.NewMockVenueRepo(t), newTestLogger(t))

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), domain.CreateFeedbackInput{
			VenueID: "v1",
			UserID:  "u1",
			Rating:  rating,
		})
		assert.ErrorIs(t, err, domain.ErrValidation, "rating %d", rating)
	}
}

func TestFeedbackService_Review(t *testing.T) {
	feedbackRepo := mocks.NewMockFeedbackRepo(t)
	svc := NewFeedbackService(feedbackRepo, mocks.NewMockVenueRepo(t), newTestLogger(t))

	input := domain.ReviewFeedbackInput{
		ID:         "f1",
		ReviewerID: "a1",
		Status:     domain.FeedbackStatusResolved,
		Notes:      "spoke to the venue",
	}
	feedbackRepo.EXPECT().Review(mock.Anything, input).
		Return(&domain.Feedback{ID: "f1", Status: domain.FeedbackStatusResolved}, nil)

	fb, err := svc.Review(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackStatusResolved, fb.Status)
}

func TestFeedbackService_Review_BadStatus(t *testing.T) {
	feedbackRepo := mocks.NewMockFeedbackRepo(t)
	svc := NewFeedbackService(feedbackRepo, mocks.NewMockVenueRepo(t), newTestLogger(t))

	_, err := svc.Review(context.Background(), domain.ReviewFeedbackInput{
		ID:     "f1",
		Status: domain.FeedbackStatusPending,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	feedbackRepo.AssertNotCalled(t, "Review")
}

func TestAvailabilityService_Save(t *testing.T) {
	availabilityRepo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(availabilityRepo, newTestLogger(t))

	pref := &domain.AvailabilityPreference{
		UserID:           "u1",
		AvailableDates:   []string{"2026-09-04", "2026-09-05"},
		MaxShiftsPerWeek: 3,
	}
	availabilityRepo.EXPECT().Upsert(mock.Anything, pref).Return(nil)

	err := svc.Save(context.Background(), pref)

	require.NoError(t, err)
	assert.False(t, pref.UpdatedAt.IsZero())
}

func TestAvailabilityService_Save_BadDate(t *testing.T) {
	availabilityRepo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(availabilityRepo, newTestLogger(t))

	err := svc.Save(context.Background(), &domain.AvailabilityPreference{
		UserID:         "u1",
		AvailableDates: []string{"04/09/2026"},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	availabilityRepo.AssertNotCalled(t, "Upsert")
}

func TestAvailabilityService_Get_NeverSaved(t *testing.T) {
	availabilityRepo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(availabilityRepo, newTestLogger(t))

	availabilityRepo.EXPECT().GetByUser(mock.Anything, "u1").Return(nil, nil)

	pref, err := svc.Get(context.Background(), "u1")

	require.NoError(t, err)
	assert.Nil(t, pref)
}
