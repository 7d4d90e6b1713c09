package repository_test

import (
	"context"
	"fmt"
	"reception/config"
	"reception/internal/domains/notification/model"
	"reception/internal/domains/notification/repository"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T, maxItems int) (repository.Notification, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Notification.MaxItems = maxItems
	cfg.Notification.TTLSeconds = 3600

	return repository.New(client, cfg), server
}

func item(id string, at time.Time) model.Notification {
	return model.Notification{
		ID:        id,
		Type:      model.TypeInfo,
		Priority:  model.PriorityLow,
		Title:     "Title " + id,
		Message:   "Message " + id,
		CreatedAt: at,
	}
}

func TestRepository_AddAndList(t *testing.T) {
	repo, server := newRepository(t, 10)
	ctx := context.Background()
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Add(ctx, "7", item("a", base)))
	require.NoError(t, repo.Add(ctx, "7", item("b", base.Add(time.Minute))))
	require.NoError(t, repo.Add(ctx, "8", item("c", base)))

	items, err := repo.List(ctx, "7", 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
	assert.False(t, items[0].Read)

	limited, err := repo.List(ctx, "7", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "b", limited[0].ID)

	assert.Greater(t, server.TTL("reception:notification:7:index"), time.Duration(0))
}

func TestRepository_ListEmpty(t *testing.T) {
	repo, _ := newRepository(t, 10)

	items, err := repo.List(context.Background(), "nobody", 5)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRepository_TrimsOldest(t *testing.T) {
	repo, _ := newRepository(t, 3)
	ctx := context.Background()
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	for i := range 5 {
		require.NoError(t, repo.Add(ctx, "7", item(fmt.Sprintf("n%d", i), base.Add(time.Duration(i)*time.Minute))))
	}

	items, err := repo.List(ctx, "7", 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "n4", items[0].ID)
	assert.Equal(t, "n2", items[2].ID)
}

func TestRepository_MarkRead(t *testing.T) {
	repo, _ := newRepository(t, 10)
	ctx := context.Background()
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Add(ctx, "7", item("a", base)))
	require.NoError(t, repo.Add(ctx, "7", item("b", base.Add(time.Minute))))

	changed, err := repo.MarkRead(ctx, "7", "a")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.MarkRead(ctx, "7", "a")
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = repo.MarkRead(ctx, "7", "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	items, err := repo.List(ctx, "7", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, model.UnreadCount(items))
}

func TestRepository_MarkAllRead(t *testing.T) {
	repo, _ := newRepository(t, 10)
	ctx := context.Background()
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Add(ctx, "7", item("a", base)))
	require.NoError(t, repo.Add(ctx, "7", item("b", base.Add(time.Minute))))
	_, err := repo.MarkRead(ctx, "7", "a")
	require.NoError(t, err)

	changed, err := repo.MarkAllRead(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	items, err := repo.List(ctx, "7", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, model.UnreadCount(items))

	changed, err = repo.MarkAllRead(ctx, "empty")
	require.NoError(t, err)
	assert.Equal(t, 0, changed)
}

func TestRepository_Delete(t *testing.T) {
	repo, _ := newRepository(t, 10)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "7", item("a", time.Now())))
	require.NoError(t, repo.Delete(ctx, "7", "a"))
	assert.ErrorIs(t, repo.Delete(ctx, "7", "a"), repository.ErrNotFound)

	items, err := repo.List(ctx, "7", 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRepository_Unread(t *testing.T) {
	repo, _ := newRepository(t, 100)
	ctx := context.Background()
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	for i := range 25 {
		require.NoError(t, repo.Add(ctx, "7", item(fmt.Sprintf("n%d", i), base.Add(time.Duration(i)*time.Minute))))
	}

	count, err := repo.Unread(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, 25, count)

	_, err = repo.MarkRead(ctx, "7", "n0")
	require.NoError(t, err)

	count, err = repo.Unread(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, 24, count)

	count, err = repo.Unread(ctx, "8")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
