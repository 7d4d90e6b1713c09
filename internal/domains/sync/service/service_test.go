package service_test

import (
	"context"
	"fmt"
	"reception/config"
	"reception/infras/events"
	"reception/infras/hotelapi"
	"reception/infras/otel/mocks"
	wsMocks "reception/infras/websocket/mocks"
	billingMocks "reception/internal/domains/billing/mocks"
	billingModel "reception/internal/domains/billing/model"
	"reception/internal/domains/sync/model"
	"reception/internal/domains/sync/service"
	"reception/shared/currency"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const wait = time.Second

type fakeTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func (f *fakeTicker) C() <-chan time.Time {
	return f.ch
}

func (f *fakeTicker) Stop() {
	f.stopped.Store(true)
}

type tickerFactory struct {
	created chan *fakeTicker
}

func newTickerFactory() *tickerFactory {
	return &tickerFactory{created: make(chan *fakeTicker, 8)}
}

func (f *tickerFactory) New(time.Duration) model.Ticker {
	t := &fakeTicker{ch: make(chan time.Time)}
	f.created <- t

	return t
}

func (f *tickerFactory) next(t *testing.T) *fakeTicker {
	t.Helper()

	select {
	case ticker := <-f.created:
		return ticker
	case <-time.After(wait):
		t.Fatal("ticker was not created")

		return nil
	}
}

func statsWithRevenue(revenue float64) billingModel.Stats {
	return billingModel.Stats{TotalRevenue: currency.Amount(revenue)}
}

type fixture struct {
	repo    *billingMocks.MockBilling
	tickers *tickerFactory
	syncer  service.Syncer
	fetches atomic.Int32
}

func newFixture(t *testing.T, autoSync bool) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Billing.SyncIntervalSeconds = 10
	cfg.Billing.AutoSync = autoSync

	hub := wsMocks.NewMockHub(ctrl)
	hub.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f := &fixture{
		repo:    billingMocks.NewMockBilling(ctrl),
		tickers: newTickerFactory(),
	}
	f.syncer = service.NewWithTicker(f.repo, hub, cfg, mocks.NewOtel(), f.tickers.New)

	return f
}

// stats answers every fetch with the given revenue and counts the calls.
func (f *fixture) stats(revenue float64) {
	f.repo.EXPECT().Stats(gomock.Any()).DoAndReturn(func(context.Context) (billingModel.Stats, hotelapi.Result, error) {
		f.fetches.Add(1)

		return statsWithRevenue(revenue), hotelapi.Result{}, nil
	}).AnyTimes()
}

func (f *fixture) waitFetches(t *testing.T, n int32) {
	t.Helper()

	assert.Eventually(t, func() bool { return f.fetches.Load() == n }, wait, time.Millisecond)
}

func TestSyncer_FetchesAtStartAndOnEveryTick(t *testing.T) {
	f := newFixture(t, true)
	f.stats(100)

	f.syncer.Start(context.Background())
	f.waitFetches(t, 1)

	ticker := f.tickers.next(t)

	ticker.ch <- time.Now()
	f.waitFetches(t, 2)

	ticker.ch <- time.Now()
	f.waitFetches(t, 3)

	f.syncer.Stop()

	assert.True(t, ticker.stopped.Load())
	assert.False(t, f.syncer.Snapshot().Running)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(3), f.fetches.Load())
}

func TestSyncer_AutoSyncToggle(t *testing.T) {
	f := newFixture(t, true)
	f.stats(100)

	f.syncer.Start(context.Background())
	defer f.syncer.Stop()

	f.waitFetches(t, 1)
	first := f.tickers.next(t)

	snapshot := f.syncer.SetAutoSync(false)
	assert.False(t, snapshot.AutoSync)
	assert.Eventually(t, first.stopped.Load, wait, time.Millisecond)

	_, err := f.syncer.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), f.fetches.Load())

	f.syncer.SetAutoSync(true)
	second := f.tickers.next(t)
	assert.Equal(t, int32(2), f.fetches.Load())

	second.ch <- time.Now()
	f.waitFetches(t, 3)
}

func TestSyncer_DisabledAutoSyncStillFetchesOnStart(t *testing.T) {
	f := newFixture(t, false)
	f.stats(100)

	f.syncer.Start(context.Background())
	f.waitFetches(t, 1)
	f.syncer.Stop()

	select {
	case <-f.tickers.created:
		t.Fatal("ticker must not run while auto-sync is off")
	default:
	}
}

func TestSyncer_ErrorKeepsLastGoodStats(t *testing.T) {
	f := newFixture(t, true)

	var calls atomic.Int32
	f.repo.EXPECT().Stats(gomock.Any()).DoAndReturn(func(context.Context) (billingModel.Stats, hotelapi.Result, error) {
		f.fetches.Add(1)

		switch calls.Add(1) {
		case 2:
			return billingModel.Stats{}, hotelapi.Result{}, hotelapi.ErrTransport
		default:
			return statsWithRevenue(2500), hotelapi.Result{}, nil
		}
	}).AnyTimes()

	f.syncer.Start(context.Background())
	defer f.syncer.Stop()

	f.waitFetches(t, 1)
	ticker := f.tickers.next(t)

	ticker.ch <- time.Now()
	assert.Eventually(t, func() bool { return f.syncer.Snapshot().Status == model.StatusError }, wait, time.Millisecond)

	snapshot := f.syncer.Snapshot()
	assert.Equal(t, "Unable to reach the hotel system", snapshot.Error)
	require.NotNil(t, snapshot.Stats)
	assert.Equal(t, 2500.0, snapshot.Stats.TotalRevenue)

	ticker.ch <- time.Now()
	assert.Eventually(t, func() bool { return f.syncer.Snapshot().Status == model.StatusOK }, wait, time.Millisecond)
	assert.Empty(t, f.syncer.Snapshot().Error)
}

func TestSyncer_NotConfiguredIsAWarning(t *testing.T) {
	f := newFixture(t, false)
	f.repo.EXPECT().Stats(gomock.Any()).Return(billingModel.Stats{}, hotelapi.Result{
		SystemStatus: hotelapi.SystemStatusNotConfigured,
	}, nil)

	snapshot, err := f.syncer.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.StatusNotConfigured, snapshot.Status)
	assert.Equal(t, model.DefaultWarning, snapshot.Warning)
	assert.Empty(t, snapshot.Error)
}

func TestSyncer_RejectedWithTablesMissingIsAWarning(t *testing.T) {
	f := newFixture(t, false)
	rejection := &hotelapi.APIError{
		Action:       "billing_stats",
		Message:      "Billing tables have not been created yet",
		SystemStatus: hotelapi.SystemStatusTablesMissing,
	}
	f.repo.EXPECT().Stats(gomock.Any()).Return(billingModel.Stats{}, hotelapi.Result{}, fmt.Errorf("failed to fetch billing stats: %w", rejection))

	snapshot, err := f.syncer.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.StatusNotConfigured, snapshot.Status)
	assert.Equal(t, "Billing tables have not been created yet", snapshot.Warning)
	assert.Empty(t, snapshot.Error)
}

func TestSyncer_StaleResponseIsDiscarded(t *testing.T) {
	f := newFixture(t, false)

	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})

	var calls atomic.Int32
	f.repo.EXPECT().Stats(gomock.Any()).DoAndReturn(func(context.Context) (billingModel.Stats, hotelapi.Result, error) {
		if calls.Add(1) == 1 {
			close(slowStarted)
			<-releaseSlow

			return statsWithRevenue(1), hotelapi.Result{}, nil
		}

		return statsWithRevenue(2), hotelapi.Result{}, nil
	}).Times(2)

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		_, _ = f.syncer.Refresh(context.Background())
	}()

	<-slowStarted

	fresh, err := f.syncer.Refresh(context.Background())
	require.NoError(t, err)
	require.NotNil(t, fresh.Stats)
	assert.Equal(t, 2.0, fresh.Stats.TotalRevenue)

	close(releaseSlow)
	wg.Wait()

	snapshot := f.syncer.Snapshot()
	assert.Equal(t, 2.0, snapshot.Stats.TotalRevenue)
	assert.Equal(t, uint64(2), snapshot.Sequence)
}

func TestSyncer_HandleEvent(t *testing.T) {
	f := newFixture(t, false)
	f.stats(100)

	require.NoError(t, f.syncer.HandleEvent(context.Background(), events.Event{Type: events.PaymentFlowClosed}))
	assert.Equal(t, int32(0), f.fetches.Load())

	f.syncer.Start(context.Background())
	f.waitFetches(t, 1)

	require.NoError(t, f.syncer.HandleEvent(context.Background(), events.Event{Type: events.PaymentFlowClosed}))
	f.waitFetches(t, 2)

	f.syncer.Stop()
}
