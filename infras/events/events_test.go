package events_test

import (
	"context"
	"errors"
	"reception/infras/events"
	"reception/infras/kafka"
	"reception/infras/kafka/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBus_PublishOrder(t *testing.T) {
	bus := events.New()

	var seen []string
	bus.Subscribe(events.PaymentRecorded, func(_ context.Context, event events.Event) error {
		seen = append(seen, "typed:"+event.Type)

		return errors.New("ignored")
	})
	bus.Subscribe(events.RefundProcessed, func(context.Context, events.Event) error {
		seen = append(seen, "refund")

		return nil
	})
	bus.SubscribeAll(func(_ context.Context, event events.Event) error {
		assert.NotEmpty(t, event.ID)
		assert.False(t, event.CreatedAt.IsZero())
		seen = append(seen, "all:"+event.Type)

		return nil
	})

	bus.Publish(context.Background(), events.Event{Type: events.PaymentRecorded, Subject: "booking:7"})

	assert.Equal(t, []string{"typed:payment.recorded", "all:payment.recorded"}, seen)
}

func TestForwardTo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("enabled client receives every event", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		client.EXPECT().Enabled().Return(true)
		client.EXPECT().
			SendMessages(gomock.Any(), "reception.events", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				assert.Len(t, messages, 1)
				assert.Equal(t, "booking:9", messages[0].Key)

				return nil
			})

		bus := events.New()
		events.ForwardTo(bus, client, "reception.events")
		bus.Publish(context.Background(), events.Event{Type: events.CheckoutCompleted, Subject: "booking:9"})
	})

	t.Run("disabled client is not subscribed", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		client.EXPECT().Enabled().Return(false)

		bus := events.New()
		events.ForwardTo(bus, client, "reception.events")
		bus.Publish(context.Background(), events.Event{Type: events.CheckoutCompleted})
	})
}
