package worker_test

import (
	"context"
	"reception/config"
	"reception/infras/events"
	kafkaMocks "reception/infras/kafka/mocks"
	"reception/infras/otel/mocks"
	schedulerMocks "reception/infras/scheduler/mocks"
	"reception/infras/websocket"
	wsMocks "reception/infras/websocket/mocks"
	clockMocks "reception/internal/domains/clock/mocks"
	clockDto "reception/internal/domains/clock/model/dto"
	notificationMocks "reception/internal/domains/notification/mocks"
	notificationDto "reception/internal/domains/notification/model/dto"
	paymentMocks "reception/internal/domains/payment/mocks"
	roomMocks "reception/internal/domains/room/mocks"
	syncMocks "reception/internal/domains/sync/mocks"
	"reception/internal/worker"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	cfg          *config.Config
	bus          events.Bus
	kafka        *kafkaMocks.MockClient
	hub          *wsMocks.MockHub
	scheduler    *schedulerMocks.MockScheduler
	syncer       *syncMocks.MockSyncer
	clock        *clockMocks.MockClock
	notification *notificationMocks.MockNotificationService
	payment      *paymentMocks.MockPayment
	room         *roomMocks.MockRoomService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Rooms.SyncSchedule = "@every 5m"
	cfg.Kafka.Topic = "reception.events"
	cfg.Kafka.InboundTopic = "reception.notifications"

	return &fixture{
		cfg:          cfg,
		bus:          events.New(),
		kafka:        kafkaMocks.NewMockClient(ctrl),
		hub:          wsMocks.NewMockHub(ctrl),
		scheduler:    schedulerMocks.NewMockScheduler(ctrl),
		syncer:       syncMocks.NewMockSyncer(ctrl),
		clock:        clockMocks.NewMockClock(ctrl),
		notification: notificationMocks.NewMockNotificationService(ctrl),
		payment:      paymentMocks.NewMockPayment(ctrl),
		room:         roomMocks.NewMockRoomService(ctrl),
	}
}

func (f *fixture) worker() worker.Worker {
	return worker.New(f.cfg, mocks.NewOtel(), f.bus, f.kafka, f.hub, f.scheduler, f.syncer, f.clock, f.notification, f.payment, f.room)
}

func (f *fixture) expectStop() {
	f.syncer.EXPECT().Stop()
	f.scheduler.EXPECT().Stop(gomock.Any()).Return(nil)
	f.kafka.EXPECT().Close().Return(nil)
	f.hub.EXPECT().Close().Return(nil)
}

func TestStartStop(t *testing.T) {
	t.Run("registers jobs and starts loops", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.Rooms.SyncEnable = true

		f.kafka.EXPECT().Enabled().Return(false).AnyTimes()
		f.scheduler.EXPECT().Register(worker.JobRoomSync, "@every 5m", gomock.Any()).Return(nil)
		f.scheduler.EXPECT().Register(worker.JobFlowCleanup, "@every 1m", gomock.Any()).Return(nil)
		f.scheduler.EXPECT().Start()
		f.syncer.EXPECT().Start(gomock.Any())
		f.clock.EXPECT().Run(gomock.Any(), gomock.Any()).Do(func(_ context.Context, fn func(time.Time)) {
			fn(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))
		})
		f.hub.EXPECT().Broadcast(websocket.TopicClock, gomock.Any()).DoAndReturn(func(_ string, payload any) error {
			tick, ok := payload.(clockDto.Tick)
			require.True(t, ok)
			assert.Equal(t, int64(1736935200), tick.Unix)

			return nil
		})
		f.expectStop()

		w := f.worker()
		require.NoError(t, w.Start(context.Background()))
		require.NoError(t, w.Start(context.Background()), "second start is a no-op")
		require.NoError(t, w.Stop(context.Background()))
		require.NoError(t, w.Stop(context.Background()), "second stop is a no-op")
	})

	t.Run("room sync job is optional", func(t *testing.T) {
		f := newFixture(t)

		f.kafka.EXPECT().Enabled().Return(false).AnyTimes()
		f.scheduler.EXPECT().Register(worker.JobFlowCleanup, gomock.Any(), gomock.Any()).Return(nil)
		f.scheduler.EXPECT().Start()
		f.syncer.EXPECT().Start(gomock.Any())
		f.clock.EXPECT().Run(gomock.Any(), gomock.Any())
		f.expectStop()

		w := f.worker()
		require.NoError(t, w.Start(context.Background()))
		require.NoError(t, w.Stop(context.Background()))
	})
}

func TestEventsFanOut(t *testing.T) {
	f := newFixture(t)

	f.kafka.EXPECT().Enabled().Return(false).AnyTimes()
	f.scheduler.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.scheduler.EXPECT().Start()
	f.syncer.EXPECT().Start(gomock.Any())
	f.clock.EXPECT().Run(gomock.Any(), gomock.Any())
	f.expectStop()

	w := f.worker()
	require.NoError(t, w.Start(context.Background()))

	f.syncer.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).Return(nil)
	f.notification.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	f.bus.Publish(context.Background(), events.Event{Type: events.PaymentRecorded, Actor: "7", Subject: "42"})
	f.bus.Publish(context.Background(), events.Event{Type: events.RoomStatusChanged, Actor: "7", Subject: "101"})

	require.NoError(t, w.Stop(context.Background()))
}

func TestInboundNotifications(t *testing.T) {
	f := newFixture(t)

	f.kafka.EXPECT().Enabled().Return(true).AnyTimes()
	f.kafka.EXPECT().SendMessages(gomock.Any(), "reception.events", gomock.Any()).Return(nil).AnyTimes()
	f.scheduler.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.scheduler.EXPECT().Start()
	f.syncer.EXPECT().Start(gomock.Any())
	f.clock.EXPECT().Run(gomock.Any(), gomock.Any())
	f.kafka.EXPECT().Consume(gomock.Any(), "reception.notifications", gomock.Any()).
		Do(func(ctx context.Context, _ string, handler func(context.Context, kafkaGo.Message)) {
			handler(ctx, kafkaGo.Message{Value: []byte(`{"user_id":"7","type":"urgent","priority":"high","title":"Leak","message":"Room 204 reports a leak"}`)})
			handler(ctx, kafkaGo.Message{Value: []byte(`{"type":"info","priority":"low","title":"No recipient","message":"dropped"}`)})
			handler(ctx, kafkaGo.Message{Value: []byte(`not json`)})
		})
	f.notification.EXPECT().Push(gomock.Any(), notificationDto.CreateNotificationRequest{
		UserID:   "7",
		Type:     "urgent",
		Priority: "high",
		Title:    "Leak",
		Message:  "Room 204 reports a leak",
	}).Return(notificationDto.NotificationResponse{ID: "n1"}, nil)
	f.expectStop()

	w := f.worker()
	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Stop(context.Background()))
}
