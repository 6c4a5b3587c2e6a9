package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type outboxDispatcher interface {
	Dispatch(ctx context.Context) (int, error)
}

type shiftSweeper interface {
	CompletePast(ctx context.Context, now time.Time) (int64, error)
	CancelStalePending(ctx context.Context, olderThan time.Time) (int64, error)
}

type invitationSweeper interface {
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

// Scheduler runs the periodic maintenance work: publishing outbox rows,
// completing past shifts, cancelling stale pending assignments and expiring
// old invitations.
type Scheduler struct {
	dispatcher    outboxDispatcher
	shifts        shiftSweeper
	invitations   invitationSweeper
	interval      time.Duration
	assignmentTTL time.Duration
	logger        logger.Logger
}

func New(
	dispatcher outboxDispatcher,
	shifts shiftSweeper,
	invitations invitationSweeper,
	interval time.Duration,
	assignmentTTL time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		dispatcher:    dispatcher,
		shifts:        shifts,
		invitations:   invitations,
		interval:      interval,
		assignmentTTL: assignmentTTL,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	now := time.Now().UTC()

	if n, err := s.dispatcher.Dispatch(ctx); err != nil {
		s.logger.Error("outbox dispatch failed",
			logger.String("error", err.Error()),
		)
	} else if n > 0 {
		s.logger.Info("notifications dispatched", logger.Int("count", n))
	}

	if n, err := s.shifts.CompletePast(ctx, now); err != nil {
		s.logger.Error("failed to complete past shifts",
			logger.String("error", err.Error()),
		)
	} else if n > 0 {
		s.logger.Info("shifts completed", logger.Int64("count", n))
	}

	if n, err := s.shifts.CancelStalePending(ctx, now.Add(-s.assignmentTTL)); err != nil {
		s.logger.Error("failed to cancel stale assignments",
			logger.String("error", err.Error()),
		)
	} else if n > 0 {
		s.logger.Info("stale assignments cancelled", logger.Int64("count", n))
	}

	if n, err := s.invitations.ExpireStale(ctx, now); err != nil {
		s.logger.Error("failed to expire invitations",
			logger.String("error", err.Error()),
		)
	} else if n > 0 {
		s.logger.Info("invitations expired", logger.Int64("count", n))
	}
}
