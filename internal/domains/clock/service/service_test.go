package service_test

import (
	"context"
	"net/http"
	"reception/internal/domains/clock/model/dto"
	"reception/internal/domains/clock/service"
	"reception/shared/failure"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_Now(t *testing.T) {
	local := time.Date(2026, 10, 19, 9, 45, 30, 0, time.UTC)
	svc := service.NewWithSource(func() time.Time { return local }, time.Second)

	t.Run("without server time", func(t *testing.T) {
		res, err := svc.Now(dto.ClockRequest{})
		require.NoError(t, err)

		assert.Equal(t, "9:45 AM", res.Display)
		assert.Nil(t, res.DriftMinutes)
		assert.Empty(t, res.DriftStatus)
	})

	t.Run("rfc3339 server time behind local", func(t *testing.T) {
		res, err := svc.Now(dto.ClockRequest{ServerTime: "2026-10-19T09:40:00Z", Format: "24h", ShowSeconds: true})
		require.NoError(t, err)

		assert.Equal(t, "09:45:30", res.Display)
		require.NotNil(t, res.DriftMinutes)
		assert.Equal(t, 5, *res.DriftMinutes)
		assert.Equal(t, "ahead", res.DriftStatus)
	})

	t.Run("invalid server time", func(t *testing.T) {
		_, err := svc.Now(dto.ClockRequest{ServerTime: "yesterday"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "server_time", failure.GetField(err))
	})
}

func TestClock_Run(t *testing.T) {
	svc := service.NewWithSource(time.Now, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	var ticks atomic.Int32
	done := make(chan struct{})

	go func() {
		defer close(done)

		svc.Run(ctx, func(time.Time) { ticks.Add(1) })
	}()

	assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	<-done

	stopped := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load())
}
