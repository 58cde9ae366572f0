package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"foodmarket/internal/domain/service"
	"foodmarket/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// rabbitMQPublisher implements EventPublisher on a RabbitMQ fanout exchange
type rabbitMQPublisher struct {
	conn   *RabbitMQConnection
	logger *slog.Logger
}

// NewRabbitMQPublisher creates a publisher over an established connection
func NewRabbitMQPublisher(conn *RabbitMQConnection, logger *slog.Logger) service.EventPublisher {
	return &rabbitMQPublisher{conn: conn, logger: logger}
}

// PublishNotificationEvent publishes a persistent JSON message
func (p *rabbitMQPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	channel, err := p.conn.Channel()
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	for key, value := range eventAttributes(event) {
		headers[key] = value
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := channel.PublishWithContext(ctx, p.conn.Exchange(), "", false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.NotificationID,
		CorrelationId: event.RequestID,
		Timestamp:     time.Now(),
		Headers:       headers,
		Body:          body,
	}); err != nil {
		return errors.Wrap(err, "failed to publish to rabbitmq")
	}

	p.logger.Debug("[RabbitMQ] Event published",
		slog.String("notification_id", event.NotificationID),
		slog.String("kind", event.Kind),
	)

	return nil
}

// Close closes the underlying connection
func (p *rabbitMQPublisher) Close() error {
	return p.conn.Close()
}
