package notification

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/mq"
)

type userGetter interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type deliverer interface {
	Deliver(ctx context.Context, user *domain.User, n *domain.Notification) error
}

// Consumer reads dispatched notifications off the queue and delivers them to
// the user's external channel.
type Consumer struct {
	users     userGetter
	deliverer deliverer
	logger    logger.Logger
}

func NewConsumer(users userGetter, deliverer deliverer, logger logger.Logger) *Consumer {
	return &Consumer{users: users, deliverer: deliverer, logger: logger}
}

// Start consumes until the channel closes. Messages that fail delivery are
// requeued once by the broker; malformed messages are dropped.
func (c *Consumer) Start(ctx context.Context, conn *amqp.Connection) error {
	ch, err := mq.NewChannel(conn)
	if err != nil {
		return err
	}

	msgs, err := ch.Consume(mq.NotificationDispatchQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			c.handle(ctx, msg)
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp.Delivery) {
	var m mq.NotificationMessage
	if err := json.Unmarshal(msg.Body, &m); err != nil {
		c.logger.Error("dropping malformed notification message",
			logger.String("error", err.Error()),
		)
		msg.Nack(false, false)
		return
	}

	user, err := c.users.GetByID(ctx, m.UserID)
	if err != nil {
		c.logger.Error("failed to load user for delivery",
			logger.String("notification_id", m.ID),
			logger.String("user_id", m.UserID),
			logger.String("error", err.Error()),
		)
		msg.Nack(false, false)
		return
	}

	n := &domain.Notification{
		ID:       m.ID,
		UserID:   m.UserID,
		Type:     domain.NotificationType(m.Type),
		Title:    m.Title,
		Message:  m.Message,
		Metadata: m.Metadata,
	}
	if err := c.deliverer.Deliver(ctx, user, n); err != nil {
		c.logger.Error("failed to deliver notification",
			logger.String("notification_id", m.ID),
			logger.String("error", err.Error()),
		)
		msg.Nack(false, !msg.Redelivered)
		return
	}

	msg.Ack(false)
}
