package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"reception/config"
	"reception/internal/domains/payment/model"
	"sync"
	"time"
)

const defaultTimeout = 30 * time.Minute

// Session keeps open payment flows in memory. State of record stays with the hotel API.
type Session interface {
	Save(flow *model.Flow)
	Get(id string) (*model.Flow, bool)
	Delete(id string) (*model.Flow, bool)
	Cleanup(now time.Time) int
	Len() int
}

type sessionImpl struct {
	mu      sync.RWMutex
	flows   map[string]*model.Flow
	timeout time.Duration
}

func New(timeout time.Duration) Session {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &sessionImpl{
		flows:   make(map[string]*model.Flow),
		timeout: timeout,
	}
}

// NewFromConfig expires flows after PAYMENT_FLOW_TIMEOUT_MINUTES of inactivity.
func NewFromConfig(cfg *config.Config) Session {
	return New(time.Duration(cfg.Payment.FlowTimeoutMinutes) * time.Minute)
}

func (s *sessionImpl) Save(flow *model.Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flows[flow.ID] = flow
}

func (s *sessionImpl) Get(id string) (*model.Flow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flow, ok := s.flows[id]

	return flow, ok
}

func (s *sessionImpl) Delete(id string) (*model.Flow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[id]
	if ok {
		delete(s.flows, id)
	}

	return flow, ok
}

// Cleanup drops expired flows that are not mid-submit and stops their close timers.
func (s *sessionImpl) Cleanup(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0

	for id, flow := range s.flows {
		flow.Lock()
		expired := flow.State != model.StateSubmitting && flow.IsExpired(now, s.timeout)
		if expired {
			flow.StopCloseTimer()
		}
		flow.Unlock()

		if expired {
			delete(s.flows, id)
			removed++
		}
	}

	return removed
}

func (s *sessionImpl) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.flows)
}
