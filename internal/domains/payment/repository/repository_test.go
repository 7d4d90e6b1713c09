package repository_test

import (
	billingModel "reception/internal/domains/billing/model"
	"reception/internal/domains/payment/model"
	"reception/internal/domains/payment/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_SaveGetDelete(t *testing.T) {
	store := repository.New(time.Minute)
	flow := model.NewFlow("flow-1", "staff-1", model.ModePayment, billingModel.Booking{ID: 1}, time.Now())

	store.Save(flow)

	got, ok := store.Get("flow-1")
	require.True(t, ok)
	assert.Same(t, flow, got)
	assert.Equal(t, 1, store.Len())

	deleted, ok := store.Delete("flow-1")
	require.True(t, ok)
	assert.Same(t, flow, deleted)

	_, ok = store.Get("flow-1")
	assert.False(t, ok)

	_, ok = store.Delete("flow-1")
	assert.False(t, ok)
}

func TestSession_Cleanup(t *testing.T) {
	store := repository.New(10 * time.Minute)
	now := time.Now()

	stale := model.NewFlow("stale", "staff-1", model.ModePayment, billingModel.Booking{ID: 1}, now.Add(-time.Hour))
	fresh := model.NewFlow("fresh", "staff-1", model.ModePayment, billingModel.Booking{ID: 2}, now)
	busy := model.NewFlow("busy", "staff-1", model.ModePayment, billingModel.Booking{ID: 3}, now.Add(-time.Hour))
	busy.State = model.StateSubmitting

	store.Save(stale)
	store.Save(fresh)
	store.Save(busy)

	assert.Equal(t, 1, store.Cleanup(now))

	_, ok := store.Get("stale")
	assert.False(t, ok)

	_, ok = store.Get("fresh")
	assert.True(t, ok)

	_, ok = store.Get("busy")
	assert.True(t, ok)
}
