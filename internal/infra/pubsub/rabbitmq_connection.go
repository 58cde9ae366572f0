package pubsub

import (
	"log/slog"
	"sync"
	"time"

	"foodmarket/config"
	"foodmarket/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultExchange    = "notifications_fanout"
	defaultQueue       = "notifications_dispatch"
	defaultPrefetch    = 10
	maxConnectAttempts = 5
)

// RabbitMQConnection owns one AMQP connection and channel and redials them on demand.
type RabbitMQConnection struct {
	mu       sync.Mutex
	url      string
	exchange string
	queue    string
	prefetch int
	logger   *slog.Logger
	conn     *amqp.Connection
	channel  *amqp.Channel

	// dial is replaced in tests.
	dial func(url string) (*amqp.Connection, error)
}

// NewRabbitMQConnection dials the broker and declares the notification topology.
func NewRabbitMQConnection(cfg *config.RabbitMQConfig, logger *slog.Logger) (*RabbitMQConnection, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("rabbitmq url is required for rabbitmq provider")
	}

	c := &RabbitMQConnection{
		url:      cfg.URL,
		exchange: valueOr(cfg.Exchange, defaultExchange),
		queue:    valueOr(cfg.Queue, defaultQueue),
		prefetch: cfg.Prefetch,
		logger:   logger,
		dial:     amqp.Dial,
	}
	if c.prefetch <= 0 {
		c.prefetch = defaultPrefetch
	}

	if err := c.connect(); err != nil {
		return nil, err
	}

	return c, nil
}

// Exchange returns the fanout exchange events are published to.
func (c *RabbitMQConnection) Exchange() string {
	return c.exchange
}

// Queue returns the queue the worker consumes.
func (c *RabbitMQConnection) Queue() string {
	return c.queue
}

// Channel returns a live channel, reconnecting when the previous one was closed.
func (c *RabbitMQConnection) Channel() (*amqp.Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.conn.IsClosed() || c.channel == nil || c.channel.IsClosed() {
		c.closeLocked()
		if err := c.connectLocked(); err != nil {
			return nil, err
		}
	}

	return c.channel, nil
}

// Close closes the channel and the connection.
func (c *RabbitMQConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closeLocked()
}

func (c *RabbitMQConnection) connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.connectLocked()
}

func (c *RabbitMQConnection) connectLocked() error {
	var err error
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		if err = c.dialAndDeclare(); err == nil {
			return nil
		}
		c.closeLocked()

		if attempt < maxConnectAttempts {
			wait := time.Duration(attempt) * 2 * time.Second
			c.logger.Warn("RabbitMQ connection failed, retrying",
				slog.Int("attempt", attempt),
				slog.Duration("wait", wait),
				slog.Any("error", err),
			)
			time.Sleep(wait)
		}
	}

	return errors.Wrapf(err, "failed to connect to RabbitMQ after %d attempts", maxConnectAttempts)
}

func (c *RabbitMQConnection) dialAndDeclare() error {
	conn, err := c.dial(c.url)
	if err != nil {
		return errors.Wrap(err, "dial")
	}
	c.conn = conn

	channel, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "open channel")
	}
	c.channel = channel

	if err := channel.ExchangeDeclare(c.exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "declare exchange %s", c.exchange)
	}
	if _, err := channel.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "declare queue %s", c.queue)
	}
	if err := channel.QueueBind(c.queue, "", c.exchange, false, nil); err != nil {
		return errors.Wrapf(err, "bind queue %s", c.queue)
	}

	return nil
}

func (c *RabbitMQConnection) closeLocked() error {
	if c.channel != nil {
		_ = c.channel.Close()
		c.channel = nil
	}
	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		if err != nil && !errors.Is(err, amqp.ErrClosed) {
			return errors.Wrap(err, "close rabbitmq connection")
		}
	}

	return nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
