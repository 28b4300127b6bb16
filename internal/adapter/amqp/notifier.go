// Package amqp publishes assignment notification events to RabbitMQ.
// Publishing is best-effort from the caller's point of view: core operations
// log and count a failed publish but never fail because of it.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
)

const publishTimeout = 5 * time.Second

// Notifier is an AMQP publisher for domain.NotificationEvent.
type Notifier struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
	log          *slog.Logger
}

// NewNotifier dials the broker, declares a durable direct exchange and queue,
// binds them, and returns a ready publisher.
func NewNotifier(url, exchangeName, queueName string, log *slog.Logger) (*Notifier, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	n := &Notifier{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
		log:          log.With("component", "amqp_notifier"),
	}

	if err := n.setup(); err != nil {
		n.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return n, nil
}

func (n *Notifier) setup() error {
	err := n.channel.ExchangeDeclare(
		n.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = n.channel.QueueDeclare(
		n.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = n.channel.QueueBind(
		n.queueName,    // queue name
		n.queueName,    // routing key (same as queue name for direct exchange)
		n.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// Notify publishes one event as a persistent JSON message.
func (n *Notifier) Notify(ctx context.Context, event domain.NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = n.channel.PublishWithContext(
		ctx,
		n.exchangeName, // exchange
		n.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	n.log.InfoContext(ctx, "published notification event",
		"kind", event.Kind,
		"client_id", event.ClientID,
		"employee_id", event.EmployeeID,
		"exchange", n.exchangeName,
		"queue", n.queueName)

	return nil
}

// Close releases the channel and connection.
func (n *Notifier) Close() error {
	if n.channel != nil {
		n.channel.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}

// NopNotifier drops every event, logging it at debug level. Used when no
// broker URL is configured.
type NopNotifier struct {
	log *slog.Logger
}

// NewNopNotifier creates a notifier that only logs.
func NewNopNotifier(log *slog.Logger) *NopNotifier {
	return &NopNotifier{log: log.With("component", "nop_notifier")}
}

// Notify logs the event and drops it.
func (n *NopNotifier) Notify(ctx context.Context, event domain.NotificationEvent) error {
	n.log.DebugContext(ctx, "notification publishing disabled, dropping event",
		"kind", event.Kind,
		"client_id", event.ClientID,
		"employee_id", event.EmployeeID)
	return nil
}
