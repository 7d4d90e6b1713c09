package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"reception/config"
	"reception/internal/domains/notification/model"
	"reception/shared"
	"time"

	"github.com/goccy/go-json"
	goRedis "github.com/redis/go-redis/v9"
)

const (
	defaultMaxItems = 100
	defaultTTL      = 7 * 24 * time.Hour

	keyIndex = "index"
	keyItems = "items"
	keyRead  = "read"
)

var ErrNotFound = errors.New("notification not found")

// Notification stores each staff member's feed in Redis: a sorted index by creation time,
// a hash of encoded items and a set of read IDs.
type Notification interface {
	Add(ctx context.Context, userID string, item model.Notification) error
	List(ctx context.Context, userID string, limit int) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID, id string) (bool, error)
	MarkAllRead(ctx context.Context, userID string) (int, error)
	Unread(ctx context.Context, userID string) (int, error)
	Delete(ctx context.Context, userID, id string) error
}

type repositoryImpl struct {
	client   *goRedis.Client
	maxItems int
	ttl      time.Duration
}

func New(client *goRedis.Client, cfg *config.Config) Notification {
	maxItems := cfg.Notification.MaxItems
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}

	ttl := time.Duration(cfg.Notification.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &repositoryImpl{
		client:   client,
		maxItems: maxItems,
		ttl:      ttl,
	}
}

func key(userID, part string) string {
	return shared.BuildCacheKey(model.EntityName, userID, part)
}

func (r *repositoryImpl) Add(ctx context.Context, userID string, item model.Notification) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	index, items, read := key(userID, keyIndex), key(userID, keyItems), key(userID, keyRead)

	_, err = r.client.TxPipelined(ctx, func(pipe goRedis.Pipeliner) error {
		pipe.HSet(ctx, items, item.ID, data)
		pipe.ZAdd(ctx, index, goRedis.Z{Score: float64(item.CreatedAt.UnixMilli()), Member: item.ID})

		if item.Read {
			pipe.SAdd(ctx, read, item.ID)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add notification: %w", err)
	}

	if err = r.trim(ctx, userID); err != nil {
		return err
	}

	for _, k := range []string{index, items, read} {
		if err = r.client.Expire(ctx, k, r.ttl).Err(); err != nil {
			return fmt.Errorf("failed to set notification ttl: %w", err)
		}
	}

	return nil
}

// trim drops the oldest entries beyond maxItems.
func (r *repositoryImpl) trim(ctx context.Context, userID string) error {
	index := key(userID, keyIndex)

	count, err := r.client.ZCard(ctx, index).Result()
	if err != nil {
		return fmt.Errorf("failed to count notifications: %w", err)
	}

	excess := count - int64(r.maxItems)
	if excess <= 0 {
		return nil
	}

	stale, err := r.client.ZRange(ctx, index, 0, excess-1).Result()
	if err != nil {
		return fmt.Errorf("failed to read stale notifications: %w", err)
	}

	return r.remove(ctx, userID, stale...)
}

func (r *repositoryImpl) remove(ctx context.Context, userID string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	members := make([]any, len(ids))
	for i, id := range ids {
		members[i] = id
	}

	_, err := r.client.TxPipelined(ctx, func(pipe goRedis.Pipeliner) error {
		pipe.ZRem(ctx, key(userID, keyIndex), members...)
		pipe.HDel(ctx, key(userID, keyItems), ids...)
		pipe.SRem(ctx, key(userID, keyRead), members...)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove notifications: %w", err)
	}

	return nil
}

// List returns the newest items first. A non-positive limit returns everything kept.
func (r *repositoryImpl) List(ctx context.Context, userID string, limit int) ([]model.Notification, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	ids, err := r.client.ZRevRange(ctx, key(userID, keyIndex), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	if len(ids) == 0 {
		return []model.Notification{}, nil
	}

	values, err := r.client.HMGet(ctx, key(userID, keyItems), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}

	readIDs, err := r.client.SMembers(ctx, key(userID, keyRead)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load read notifications: %w", err)
	}

	read := make(map[string]struct{}, len(readIDs))
	for _, id := range readIDs {
		read[id] = struct{}{}
	}

	items := make([]model.Notification, 0, len(values))

	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var item model.Notification
		if err = json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("failed to decode notification: %w", err)
		}

		_, item.Read = read[item.ID]
		items = append(items, item)
	}

	return items, nil
}

// MarkRead reports true only the first time an item is marked.
func (r *repositoryImpl) MarkRead(ctx context.Context, userID, id string) (bool, error) {
	exists, err := r.client.HExists(ctx, key(userID, keyItems), id).Result()
	if err != nil {
		return false, fmt.Errorf("failed to find notification: %w", err)
	}

	if !exists {
		return false, ErrNotFound
	}

	added, err := r.client.SAdd(ctx, key(userID, keyRead), id).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark notification read: %w", err)
	}

	if err = r.client.Expire(ctx, key(userID, keyRead), r.ttl).Err(); err != nil {
		return false, fmt.Errorf("failed to set notification ttl: %w", err)
	}

	return added == 1, nil
}

// MarkAllRead returns how many items changed from unread to read.
func (r *repositoryImpl) MarkAllRead(ctx context.Context, userID string) (int, error) {
	ids, err := r.client.ZRange(ctx, key(userID, keyIndex), 0, -1).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	if len(ids) == 0 {
		return 0, nil
	}

	members := make([]any, len(ids))
	for i, id := range ids {
		members[i] = id
	}

	added, err := r.client.SAdd(ctx, key(userID, keyRead), members...).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	if err = r.client.Expire(ctx, key(userID, keyRead), r.ttl).Err(); err != nil {
		return 0, fmt.Errorf("failed to set notification ttl: %w", err)
	}

	return int(added), nil
}

// Unread counts unread items across the whole feed, not just one page of it.
func (r *repositoryImpl) Unread(ctx context.Context, userID string) (int, error) {
	var total, read *goRedis.IntCmd

	_, err := r.client.Pipelined(ctx, func(pipe goRedis.Pipeliner) error {
		total = pipe.ZCard(ctx, key(userID, keyIndex))
		read = pipe.SCard(ctx, key(userID, keyRead))

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return int(max(total.Val()-read.Val(), 0)), nil
}

func (r *repositoryImpl) Delete(ctx context.Context, userID, id string) error {
	exists, err := r.client.HExists(ctx, key(userID, keyItems), id).Result()
	if err != nil {
		return fmt.Errorf("failed to find notification: %w", err)
	}

	if !exists {
		return ErrNotFound
	}

	return r.remove(ctx, userID, id)
}
