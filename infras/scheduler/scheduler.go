package scheduler

//go:generate go run go.uber.org/mock/mockgen -source=./scheduler.go -destination=./mocks/scheduler_mock.go -package=mocks

import (
	"context"
	"fmt"
	"reception/shared/timezone"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Job is a unit of background work. It receives a context cancelled on Stop.
type Job func(ctx context.Context) error

type Scheduler interface {
	Register(name, spec string, job Job) error
	Start()
	Stop(ctx context.Context) error
}

type schedulerImpl struct {
	cron    *cron.Cron
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	running bool
	timeout time.Duration
}

// New builds a cron scheduler in the hotel timezone. Overlapping runs of one job are skipped.
func New() Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &schedulerImpl{
		cron: cron.New(
			cron.WithLocation(timezone.GetLocation()),
			cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		ctx:     ctx,
		cancel:  cancel,
		timeout: time.Minute,
	}
}

func (s *schedulerImpl) Register(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
		defer cancel()

		started := time.Now()
		if err := job(ctx); err != nil {
			log.Error().Err(err).Str("job", name).Msg("scheduled job failed")

			return
		}

		log.Debug().Str("job", name).Dur("took", time.Since(started)).Msg("scheduled job finished")
	})
	if err != nil {
		return fmt.Errorf("failed to register job %s (%s): %w", name, spec, err)
	}

	log.Info().Str("job", name).Str("spec", spec).Msg("scheduled job registered")

	return nil
}

func (s *schedulerImpl) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	s.running = true
	s.cron.Start()
}

// Stop cancels running jobs and waits for them, bounded by ctx.
func (s *schedulerImpl) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		s.cancel()

		return nil
	}
	s.running = false
	s.mu.Unlock()

	s.cancel()
	done := s.cron.Stop()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}
