package notification

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/mq"
)

// Outbox is the slice of the notification store the dispatcher needs.
type Outbox interface {
	ListUndispatched(ctx context.Context, limit int) ([]*domain.Notification, error)
	MarkDispatched(ctx context.Context, ids []string) error
}

// Dispatcher drains the notification outbox into the dispatch queue. Rows are
// only marked dispatched after a successful publish, so a failed publish is
// retried on the next pass (delivery is at-least-once).
type Dispatcher struct {
	outbox    Outbox
	ch        *amqp.Channel
	batchSize int
	logger    logger.Logger
}

func NewDispatcher(outbox Outbox, ch *amqp.Channel, batchSize int, logger logger.Logger) *Dispatcher {
	return &Dispatcher{
		outbox:    outbox,
		ch:        ch,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Dispatch publishes one batch and reports how many rows were handed over.
func (d *Dispatcher) Dispatch(ctx context.Context) (int, error) {
	pending, err := d.outbox.ListUndispatched(ctx, d.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list undispatched: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	published := make([]string, 0, len(pending))
	for _, n := range pending {
		msg := mq.NotificationMessage{
			ID:       n.ID,
			UserID:   n.UserID,
			Type:     string(n.Type),
			Title:    n.Title,
			Message:  n.Message,
			Metadata: n.Metadata,
		}
		if err := mq.Publish(ctx, d.ch, mq.NotificationDispatchQueue, msg); err != nil {
			d.logger.Error("failed to publish notification",
				logger.String("notification_id", n.ID),
				logger.String("error", err.Error()),
			)
			break
		}
		published = append(published, n.ID)
	}

	if len(published) == 0 {
		return 0, nil
	}
	if err := d.outbox.MarkDispatched(ctx, published); err != nil {
		// The rows will be re-published next pass; the consumer tolerates
		// duplicates because delivery is keyed by notification id.
		return len(published), fmt.Errorf("mark dispatched: %w", err)
	}
	return len(published), nil
}
