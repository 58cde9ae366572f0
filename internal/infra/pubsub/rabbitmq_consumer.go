package pubsub

import (
	"context"
	"log/slog"
	"time"

	"foodmarket/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	messageTimeout = 30 * time.Second
	redeliveryWait = 2 * time.Second
)

// MessageHandler processes one message body.
// Returning an error wrapped by Permanent drops the message; any other error requeues it.
type MessageHandler func(ctx context.Context, body []byte) error

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return &permanentError{err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	_, ok := errors.AsType[*permanentError](err)

	return ok
}

// acknowledger is the subset of amqp.Delivery the consumer needs.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// RabbitMQConsumer reads the notification queue with manual acknowledgements.
type RabbitMQConsumer struct {
	conn   *RabbitMQConnection
	tag    string
	logger *slog.Logger
}

// NewRabbitMQConsumer creates a consumer identified by tag.
func NewRabbitMQConsumer(conn *RabbitMQConnection, tag string, logger *slog.Logger) *RabbitMQConsumer {
	return &RabbitMQConsumer{conn: conn, tag: tag, logger: logger}
}

// Consume blocks until ctx is cancelled, reconnecting whenever the delivery channel closes.
func (c *RabbitMQConsumer) Consume(ctx context.Context, handler MessageHandler) error {
	for {
		deliveries, err := c.subscribe()
		if err != nil {
			return err
		}

		c.logger.Info("RabbitMQ consumer started",
			slog.String("queue", c.conn.Queue()),
			slog.String("consumer", c.tag),
		)

		if done := c.drain(ctx, deliveries, handler); done {
			return ctx.Err()
		}

		c.logger.Warn("RabbitMQ delivery channel closed, reconnecting")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(redeliveryWait):
		}
	}
}

func (c *RabbitMQConsumer) subscribe() (<-chan amqp.Delivery, error) {
	channel, err := c.conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := channel.Qos(c.conn.prefetch, 0, false); err != nil {
		return nil, errors.Wrap(err, "failed to set QoS")
	}

	deliveries, err := channel.Consume(c.conn.Queue(), c.tag, false, false, false, false, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register consumer")
	}

	return deliveries, nil
}

// drain returns true when ctx was cancelled and false when the channel closed.
func (c *RabbitMQConsumer) drain(ctx context.Context, deliveries <-chan amqp.Delivery, handler MessageHandler) bool {
	for {
		select {
		case <-ctx.Done():
			return true
		case delivery, ok := <-deliveries:
			if !ok {
				return false
			}
			c.handle(ctx, delivery.MessageId, delivery.Body, delivery, handler)
		}
	}
}

func (c *RabbitMQConsumer) handle(ctx context.Context, messageID string, body []byte, ack acknowledger, handler MessageHandler) {
	msgCtx, cancel := context.WithTimeout(ctx, messageTimeout)
	defer cancel()

	start := time.Now()
	err := handler(msgCtx, body)

	switch {
	case err == nil:
		if ackErr := ack.Ack(false); ackErr != nil {
			c.logger.Error("Failed to ack message", slog.String("message_id", messageID), slog.Any("error", ackErr))
		}
	case IsPermanent(err):
		c.logger.Error("Dropping message that cannot be processed",
			slog.String("message_id", messageID),
			slog.Any("error", err),
		)
		if nackErr := ack.Nack(false, false); nackErr != nil {
			c.logger.Error("Failed to nack message", slog.String("message_id", messageID), slog.Any("error", nackErr))
		}
	default:
		c.logger.Warn("Message processing failed, requeueing",
			slog.String("message_id", messageID),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)
		if nackErr := ack.Nack(false, true); nackErr != nil {
			c.logger.Error("Failed to nack message", slog.String("message_id", messageID), slog.Any("error", nackErr))
		}
	}
}
