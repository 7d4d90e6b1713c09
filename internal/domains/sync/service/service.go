package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"reception/config"
	"reception/infras/events"
	"reception/infras/hotelapi"
	"reception/infras/metrics"
	"reception/infras/otel"
	"reception/infras/websocket"
	billingModel "reception/internal/domains/billing/model"
	billingDto "reception/internal/domains/billing/model/dto"
	billingRepo "reception/internal/domains/billing/repository"
	"reception/internal/domains/sync/model"
	"reception/internal/domains/sync/model/dto"
	"reception/shared/constant"
	"reception/shared/timezone"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultInterval = 10 * time.Second

// Syncer polls billing stats for every dashboard. One instance serves all sessions.
type Syncer interface {
	Start(ctx context.Context)
	Stop()
	SetAutoSync(enabled bool) dto.Snapshot
	Refresh(ctx context.Context) (dto.Snapshot, error)
	Snapshot() dto.Snapshot
	HandleEvent(ctx context.Context, event events.Event) error
}

type syncerImpl struct {
	repo      billingRepo.Billing
	hub       websocket.Hub
	otel      otel.Otel
	interval  time.Duration
	newTicker model.TickerFactory

	seq atomic.Uint64

	mu       sync.Mutex
	running  bool
	autoSync bool
	cancel   context.CancelFunc
	loopCtx  context.Context
	done     chan struct{}
	toggle   chan struct{}
	inflight sync.WaitGroup

	applied       uint64
	status        model.Status
	stats         *billingDto.StatsResponse
	errMessage    string
	warning       string
	lastSyncedAt  time.Time
	lastAttemptAt time.Time
}

func New(repo billingRepo.Billing, hub websocket.Hub, cfg *config.Config, otel otel.Otel) Syncer {
	return NewWithTicker(repo, hub, cfg, otel, model.NewTimeTicker)
}

func NewWithTicker(repo billingRepo.Billing, hub websocket.Hub, cfg *config.Config, otel otel.Otel, newTicker model.TickerFactory) Syncer {
	interval := defaultInterval
	if cfg.Billing.SyncIntervalSeconds > 0 {
		interval = time.Duration(cfg.Billing.SyncIntervalSeconds) * time.Second
	}

	return &syncerImpl{
		repo:      repo,
		hub:       hub,
		otel:      otel,
		interval:  interval,
		newTicker: newTicker,
		autoSync:  cfg.Billing.AutoSync,
		status:    model.StatusPending,
	}
}

// Start fetches once immediately, then on every interval while auto-sync is on.
func (s *syncerImpl) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)

	s.running = true
	s.loopCtx = loopCtx
	s.cancel = cancel
	s.done = make(chan struct{})
	s.toggle = make(chan struct{}, 1)

	go s.run(loopCtx, s.done, s.toggle)

	log.Info().Dur("interval", s.interval).Bool("auto_sync", s.autoSync).Msg("billing sync started")
}

func (s *syncerImpl) run(ctx context.Context, done chan struct{}, toggle <-chan struct{}) {
	defer close(done)

	s.fetch(ctx, model.TriggerStart)

	var (
		ticker model.Ticker
		tick   <-chan time.Time
	)

	reset := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tick = nil, nil
		}

		if s.autoSyncEnabled() {
			ticker = s.newTicker(s.interval)
			tick = ticker.C()
		}
	}
	reset()

	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-toggle:
			reset()
		case <-tick:
			if !s.autoSyncEnabled() {
				continue
			}

			s.fetch(ctx, model.TriggerTick)
		}
	}
}

// Stop tears the poller down. No scheduled or event-driven fetch starts after it returns.
func (s *syncerImpl) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()

		return
	}

	s.running = false
	s.cancel()
	done := s.done
	s.mu.Unlock()

	<-done
	s.inflight.Wait()

	log.Info().Msg("billing sync stopped")
}

// SetAutoSync stops the ticker at once when disabled and restarts it when enabled.
// Enabling does not fetch immediately; the next fetch comes one interval later.
func (s *syncerImpl) SetAutoSync(enabled bool) dto.Snapshot {
	s.mu.Lock()
	changed := s.autoSync != enabled
	s.autoSync = enabled

	if changed && s.running {
		select {
		case s.toggle <- struct{}{}:
		default:
		}
	}
	s.mu.Unlock()

	if changed {
		log.Info().Bool("auto_sync", enabled).Msg("billing auto-sync toggled")
	}

	return s.Snapshot()
}

// Refresh fetches now regardless of the auto-sync toggle.
func (s *syncerImpl) Refresh(ctx context.Context) (res dto.Snapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshSync")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.fetch(ctx, model.TriggerManual); err != nil {
		return s.Snapshot(), hotelapi.ToFailure(err)
	}

	return s.Snapshot(), nil
}

// HandleEvent refreshes in the background after a mutation settled.
func (s *syncerImpl) HandleEvent(ctx context.Context, event events.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	loopCtx := s.loopCtx
	s.inflight.Add(1)

	go func() {
		defer s.inflight.Done()

		if err := s.fetch(loopCtx, model.TriggerEvent); err != nil {
			log.Warn().Err(err).Str("event", event.Type).Msg("event driven billing refresh failed")
		}
	}()

	return nil
}

func (s *syncerImpl) autoSyncEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.autoSync
}

func (s *syncerImpl) fetch(ctx context.Context, trigger string) error {
	seq := s.seq.Add(1)

	stats, result, err := s.repo.Stats(ctx)

	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return err
	}

	if apiErr, ok := hotelapi.AsAPIError(err); ok && apiErr.NotConfigured() {
		result, err = apiErr.Result(), nil
	}

	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case result.NotConfigured():
		outcome = "not_configured"
	}

	metrics.IncSyncFetch(trigger, outcome)

	applied := s.apply(seq, stats, result, err)
	if applied {
		snapshot := s.Snapshot()
		if broadcastErr := s.hub.Broadcast(websocket.TopicBillingSync, snapshot); broadcastErr != nil {
			log.Warn().Err(broadcastErr).Msg("failed to push billing snapshot")
		}
	}

	if err != nil {
		log.Error().Err(err).Str("trigger", trigger).Msg("billing sync fetch failed")
	}

	return err
}

// apply keeps only responses newer than the last applied one.
func (s *syncerImpl) apply(seq uint64, stats billingModel.Stats, result hotelapi.Result, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := timezone.Now()

	if seq <= s.applied {
		log.Debug().Uint64("seq", seq).Uint64("applied", s.applied).Msg("discarding stale billing response")

		return false
	}

	s.applied = seq
	s.lastAttemptAt = now

	switch {
	case err != nil:
		s.status = model.StatusError
		s.errMessage = errorMessage(err)
	case result.NotConfigured():
		s.status = model.StatusNotConfigured
		s.errMessage = ""
		s.warning = result.Message
		if s.warning == "" {
			s.warning = model.DefaultWarning
		}
	default:
		res := billingDto.StatsResponse{}
		res.FromModel(stats, result)

		s.status = model.StatusOK
		s.stats = &res
		s.errMessage = ""
		s.warning = ""
		s.lastSyncedAt = now
	}

	return true
}

func (s *syncerImpl) Snapshot() dto.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := dto.Snapshot{
		Status:          s.status,
		Stats:           s.stats,
		Error:           s.errMessage,
		Warning:         s.warning,
		AutoSync:        s.autoSync,
		Running:         s.running,
		IntervalSeconds: int(s.interval / time.Second),
		Sequence:        s.applied,
	}

	if !s.lastSyncedAt.IsZero() {
		snapshot.LastSyncedAt = timezone.Format(s.lastSyncedAt, constant.DateFormat)
	}

	if !s.lastAttemptAt.IsZero() {
		snapshot.LastAttemptAt = timezone.Format(s.lastAttemptAt, constant.DateFormat)
	}

	return snapshot
}

func errorMessage(err error) string {
	if apiErr, ok := hotelapi.AsAPIError(err); ok {
		return apiErr.Error()
	}

	return "Unable to reach the hotel system"
}
