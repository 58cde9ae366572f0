package worker

import (
	"context"
	"log/slog"

	"foodmarket/config"
	"foodmarket/internal/delivery"
	"foodmarket/internal/delivery/worker/handler"
	"foodmarket/internal/domain/constants"
	"foodmarket/internal/errors"
	"foodmarket/internal/infra/pubsub"
	"foodmarket/internal/usecase"

	"go.uber.org/fx"
)

const consumerTag = "foodmarket-worker"

type queueConsumer struct {
	logger   *slog.Logger
	conn     *pubsub.RabbitMQConnection
	consumer *pubsub.RabbitMQConsumer
	events   *handler.EventHandler

	// stopped is cancelled by the OnStop hook.
	stopped context.Context
	stop    context.CancelFunc
}

// ConsumerParams holds dependencies for the RabbitMQ consumer
type ConsumerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Events *handler.EventHandler
}

// NewQueueConsumer creates the RabbitMQ delivery. It idles when events go through Pub/Sub push instead.
func NewQueueConsumer(params ConsumerParams) (delivery.Delivery, error) {
	stopped, stop := context.WithCancel(context.Background())
	c := &queueConsumer{
		logger:  params.Logger,
		events:  params.Events,
		stopped: stopped,
		stop:    stop,
	}
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.Provider != constants.PubSubProviderRabbitMQ {
		return c, nil
	}

	conn, err := pubsub.NewRabbitMQConnection(params.Cfg.RabbitMQ, params.Logger)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.consumer = pubsub.NewRabbitMQConsumer(conn, consumerTag, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: c.shutdown,
	})

	return c, nil
}

// Serve consumes until the worker stops.
func (c *queueConsumer) Serve(ctx context.Context) error {
	if c.consumer == nil {
		c.logger.Info("RabbitMQ consumer disabled, events arrive through the push endpoint")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	unlink := context.AfterFunc(c.stopped, cancel)
	defer unlink()

	err := c.consumer.Consume(ctx, c.handle)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

func (c *queueConsumer) handle(ctx context.Context, body []byte) error {
	err := c.events.Handle(ctx, body, "")
	if errors.Is(err, usecase.ErrUndeliverable) {
		return pubsub.Permanent(err)
	}

	return err
}

func (c *queueConsumer) shutdown(_ context.Context) error {
	c.logger.Info("Stopping RabbitMQ consumer")
	c.stop()

	return c.conn.Close()
}
