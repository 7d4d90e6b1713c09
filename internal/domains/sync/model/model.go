package model

import (
	"time"
)

const EntityName = "billing_sync"

type Status string

const (
	StatusPending       Status = "pending"
	StatusOK            Status = "ok"
	StatusError         Status = "error"
	StatusNotConfigured Status = "not_configured"
)

// Fetch triggers, also used as metric labels.
const (
	TriggerStart  = "start"
	TriggerTick   = "tick"
	TriggerManual = "manual"
	TriggerEvent  = "event"
)

const DefaultWarning = "Billing tables are not set up on the hotel server yet"

// Ticker is the subset of time.Ticker the poller needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFactory func(d time.Duration) Ticker

type timeTicker struct {
	ticker *time.Ticker
}

func (t timeTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t timeTicker) Stop() {
	t.ticker.Stop()
}

func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{ticker: time.NewTicker(d)}
}
