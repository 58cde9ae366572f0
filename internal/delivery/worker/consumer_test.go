package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"foodmarket/config"
	"foodmarket/internal/delivery/worker/handler"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/infra/pubsub"
	mockUC "foodmarket/internal/mocks/usecase"
	"foodmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestConsumer(t *testing.T) (*mockUC.MockDispatchUsecase, *queueConsumer) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dispatchUC := mockUC.NewMockDispatchUsecase(t)

	return dispatchUC, &queueConsumer{
		logger: logger,
		events: handler.NewEventHandler(handler.EventHandlerParams{Logger: logger, DispatchUC: dispatchUC}),
	}
}

func TestQueueConsumer_HandleClassifiesErrors(t *testing.T) {
	body := []byte(`{"kind":"vendor_message","notification_id":"n-1","customer_id":"c-1","message":"hello"}`)

	dispatchUC, c := newTestConsumer(t)
	dispatchUC.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(&usecase.DispatchResult{}, nil).Once()
	dispatchUC.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(nil, errors.New("sns throttled")).Once()
	dispatchUC.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(event *service.NotificationEvent) bool { return event.Kind == "vendor_message" })).
		Return(nil, errors.Join(usecase.ErrUndeliverable, errors.New("customer not found"))).Once()

	require.NoError(t, c.handle(context.Background(), body))

	err := c.handle(context.Background(), body)
	require.Error(t, err)
	assert.False(t, pubsub.IsPermanent(err))

	err = c.handle(context.Background(), body)
	require.Error(t, err)
	assert.True(t, pubsub.IsPermanent(err))

	assert.True(t, pubsub.IsPermanent(c.handle(context.Background(), []byte("{broken"))))
}

func TestNewQueueConsumer_DisabledWithoutRabbitMQ(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}

	d, err := NewQueueConsumer(ConsumerParams{Lc: fxtest.NewLifecycle(t), Cfg: cfg, Logger: logger})
	require.NoError(t, err)

	assert.NoError(t, d.Serve(context.Background()))
}
