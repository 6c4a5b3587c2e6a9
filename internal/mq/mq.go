package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationDispatchQueue carries outbox rows from the dispatcher to the
// delivery consumer.
const NotificationDispatchQueue = "notification.dispatch"

// NotificationMessage is the wire form of one dispatched notification.
type NotificationMessage struct {
	ID       string            `json:"id"`
	UserID   string            `json:"user_id"`
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func NewConn(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	return conn, nil
}

func NewChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	return ch, nil
}

// InitQueues declares every queue the service uses. Safe to call on restart.
func InitQueues(conn *amqp.Connection) error {
	ch, err := NewChannel(conn)
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(NotificationDispatchQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", NotificationDispatchQueue, err)
	}
	return nil
}

func Publish(ctx context.Context, ch *amqp.Channel, queueName string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = ch.PublishWithContext(
		ctx,
		"",
		queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish to queue %s: %w", queueName, err)
	}
	return nil
}
