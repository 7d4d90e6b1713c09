package worker

import (
	"context"
	"reception/config"
	"reception/infras/events"
	"reception/infras/kafka"
	"reception/infras/otel"
	"reception/infras/scheduler"
	"reception/infras/websocket"
	clockDto "reception/internal/domains/clock/model/dto"
	clockService "reception/internal/domains/clock/service"
	notificationDto "reception/internal/domains/notification/model/dto"
	notificationService "reception/internal/domains/notification/service"
	paymentService "reception/internal/domains/payment/service"
	roomService "reception/internal/domains/room/service"
	syncService "reception/internal/domains/sync/service"
	"reception/shared/constant"
	"reception/shared/timezone"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	JobRoomSync       = "room-status-sync"
	JobFlowCleanup    = "payment-flow-cleanup"
	flowCleanupSpec   = "@every 1m"
	otelConsumerScope = "consumer"
)

// refreshOn lists the events after which billing figures are stale.
var refreshOn = []string{
	events.PaymentRecorded,
	events.CheckoutCompleted,
	events.RefundProcessed,
	events.InvoiceGenerated,
}

// Worker owns every background loop of the service: billing sync, cron jobs, the
// dashboard clock, event fan-out and the inbound notification consumer.
type Worker interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

type workerImpl struct {
	cfg          *config.Config
	otel         otel.Otel
	bus          events.Bus
	kafka        kafka.Client
	hub          websocket.Hub
	scheduler    scheduler.Scheduler
	syncer       syncService.Syncer
	clock        clockService.Clock
	notification notificationService.Notification
	payment      paymentService.Payment
	room         roomService.Room

	mu       sync.Mutex
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	setup    sync.Once
	setupErr error
}

func New(
	cfg *config.Config,
	otel otel.Otel,
	bus events.Bus,
	kafka kafka.Client,
	hub websocket.Hub,
	scheduler scheduler.Scheduler,
	syncer syncService.Syncer,
	clock clockService.Clock,
	notification notificationService.Notification,
	payment paymentService.Payment,
	room roomService.Room,
) Worker {
	return &workerImpl{
		cfg:          cfg,
		otel:         otel,
		bus:          bus,
		kafka:        kafka,
		hub:          hub,
		scheduler:    scheduler,
		syncer:       syncer,
		clock:        clock,
		notification: notification,
		payment:      payment,
		room:         room,
	}
}

func (w *workerImpl) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		return nil
	}

	w.setup.Do(func() {
		w.setupErr = w.registerJobs()

		for _, eventType := range refreshOn {
			w.bus.Subscribe(eventType, w.syncer.HandleEvent)
		}

		w.bus.SubscribeAll(w.notification.HandleEvent)
		events.ForwardTo(w.bus, w.kafka, w.cfg.Kafka.Topic)
	})

	if w.setupErr != nil {
		return w.setupErr
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.syncer.Start(ctx)
	w.scheduler.Start()

	w.wg.Add(1)

	go func() {
		defer w.wg.Done()

		w.clock.Run(ctx, w.tick)
	}()

	if w.kafka.Enabled() {
		w.wg.Add(1)

		go func() {
			defer w.wg.Done()

			w.kafka.Consume(ctx, w.cfg.Kafka.InboundTopic, w.consumeNotification)
		}()
	}

	log.Info().Bool("rooms_sync", w.cfg.Rooms.SyncEnable).Bool("kafka", w.kafka.Enabled()).Msg("background workers started")

	return nil
}

func (w *workerImpl) registerJobs() error {
	if w.cfg.Rooms.SyncEnable {
		if err := w.scheduler.Register(JobRoomSync, w.cfg.Rooms.SyncSchedule, w.room.SyncJob); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return w.scheduler.Register(JobFlowCleanup, flowCleanupSpec, w.payment.Cleanup) //nolint:wrapcheck
}

func (w *workerImpl) tick(now time.Time) {
	tick := clockDto.Tick{
		LocalTime: timezone.Format(now, constant.DateFormat),
		Unix:      now.Unix(),
	}

	if err := w.hub.Broadcast(websocket.TopicClock, tick); err != nil {
		log.Debug().Err(err).Msg("failed to broadcast clock tick")
	}
}

// consumeNotification pushes notifications published by other hotel systems.
func (w *workerImpl) consumeNotification(ctx context.Context, message kafkaGo.Message) {
	ctx, scope := w.otel.NewScope(ctx, otelConsumerScope, otelConsumerScope+".notification")
	defer scope.End()

	req, err := kafka.Decode[notificationDto.CreateNotificationRequest](message)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", string(message.Key)).Msg("failed to decode inbound notification")

		return
	}

	if req.UserID == constant.Empty {
		log.Warn().Str("key", string(message.Key)).Msg("inbound notification has no recipient, skipped")

		return
	}

	if _, err = w.notification.Push(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("user_id", req.UserID).Msg("failed to push inbound notification")
	}
}

func (w *workerImpl) Stop(ctx context.Context) error {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}

	w.syncer.Stop()
	cancel()

	err := w.scheduler.Stop(ctx)

	done := make(chan struct{})

	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Warn().Msg("background workers did not stop in time")
	}

	if closeErr := w.kafka.Close(); closeErr != nil {
		log.Error().Err(closeErr).Msg("failed to close kafka client")
	}

	if closeErr := w.hub.Close(); closeErr != nil {
		log.Error().Err(closeErr).Msg("failed to close websocket hub")
	}

	log.Info().Msg("background workers stopped")

	return err //nolint:wrapcheck
}
