package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type schedulerMocks struct {
	dispatcher  *mocks.MockOutboxDispatcher
	shifts      *mocks.MockShiftSweeper
	invitations *mocks.MockInvitationSweeper
}

func newSchedulerMocks(t *testing.T) schedulerMocks {
	return schedulerMocks{
		dispatcher:  mocks.NewMockOutboxDispatcher(t),
		shifts:      mocks.NewMockShiftSweeper(t),
		invitations: mocks.NewMockInvitationSweeper(t),
	}
}

func TestScheduler_Tick_RunsAllJobs(t *testing.T) {
	m := newSchedulerMocks(t)
	log := newTestLogger(t)

	s := New(m.dispatcher, m.shifts, m.invitations, 50*time.Millisecond, time.Hour, log)

	m.dispatcher.EXPECT().Dispatch(mock.Anything).Return(2, nil)
	m.shifts.EXPECT().CompletePast(mock.Anything, mock.Anything).Return(1, nil)
	m.shifts.EXPECT().CancelStalePending(mock.Anything, mock.Anything).Return(0, nil)
	m.invitations.EXPECT().ExpireStale(mock.Anything, mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(m.dispatcher.Calls), 1)
	assert.GreaterOrEqual(t, len(m.invitations.Calls), 1)
}

func TestScheduler_Tick_StaleCutoffUsesAssignmentTTL(t *testing.T) {
	m := newSchedulerMocks(t)
	log := newTestLogger(t)

	ttl := 48 * time.Hour
	s := New(m.dispatcher, m.shifts, m.invitations, 50*time.Millisecond, ttl, log)

	m.dispatcher.EXPECT().Dispatch(mock.Anything).Return(0, nil)
	m.shifts.EXPECT().CompletePast(mock.Anything, mock.Anything).Return(0, nil)
	m.shifts.EXPECT().CancelStalePending(mock.Anything, mock.MatchedBy(func(olderThan time.Time) bool {
		want := time.Now().UTC().Add(-ttl)
		diff := olderThan.Sub(want)
		return diff > -time.Minute && diff < time.Minute
	})).Return(0, nil)
	m.invitations.EXPECT().ExpireStale(mock.Anything, mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}

func TestScheduler_Tick_JobErrorDoesNotStopOthers(t *testing.T) {
	m := newSchedulerMocks(t)
	log := newTestLogger(t)

	s := New(m.dispatcher, m.shifts, m.invitations, 50*time.Millisecond, time.Hour, log)

	m.dispatcher.EXPECT().Dispatch(mock.Anything).Return(0, errors.New("broker gone"))
	m.shifts.EXPECT().CompletePast(mock.Anything, mock.Anything).Return(0, errors.New("db error"))
	m.shifts.EXPECT().CancelStalePending(mock.Anything, mock.Anything).Return(0, nil)
	m.invitations.EXPECT().ExpireStale(mock.Anything, mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(m.invitations.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	m := newSchedulerMocks(t)
	log := newTestLogger(t)

	s := New(m.dispatcher, m.shifts, m.invitations, time.Second, time.Hour, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	m := newSchedulerMocks(t)
	log := newTestLogger(t)

	s := New(m.dispatcher, m.shifts, m.invitations, 30*time.Millisecond, time.Hour, log)

	m.dispatcher.EXPECT().Dispatch(mock.Anything).Return(0, nil)
	m.shifts.EXPECT().CompletePast(mock.Anything, mock.Anything).Return(0, nil)
	m.shifts.EXPECT().CancelStalePending(mock.Anything, mock.Anything).Return(0, nil)
	m.invitations.EXPECT().ExpireStale(mock.Anything, mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(m.dispatcher.Calls), 3)
}
