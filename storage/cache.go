package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"items-api/models"
)

const cacheTTL = 5 * time.Minute

// CachedStore wraps another Store with a redis read-through cache on
// GetByID. Cache faults are treated as misses; they never fail a request.
type CachedStore struct {
	next  Store
	redis *redis.Client
}

func NewCachedStore(next Store, client *redis.Client) *CachedStore {
	return &CachedStore{next: next, redis: client}
}

func newRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func cacheKey(id int64) string {
	return "item:" + strconv.FormatInt(id, 10)
}

func (s *CachedStore) Create(ctx context.Context, patch models.ItemPatch) (*models.Item, error) {
	return s.next.Create(ctx, patch)
}

func (s *CachedStore) GetAll(ctx context.Context) ([]models.Item, error) {
	return s.next.GetAll(ctx)
}

func (s *CachedStore) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	if val, err := s.redis.Get(ctx, cacheKey(id)).Result(); err == nil {
		var item models.Item
		if err := json.Unmarshal([]byte(val), &item); err == nil {
			return &item, nil
		}
	}

	item, err := s.next.GetByID(ctx, id)
	if err != nil || item == nil {
		return item, err
	}

	if buf, err := json.Marshal(item); err == nil {
		s.redis.Set(ctx, cacheKey(id), buf, cacheTTL)
	}
	return item, nil
}

func (s *CachedStore) Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.Item, error) {
	item, err := s.next.Update(ctx, id, patch)
	if err == nil {
		s.redis.Del(ctx, cacheKey(id))
	}
	return item, err
}

func (s *CachedStore) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.next.Delete(ctx, id)
	if err == nil {
		s.redis.Del(ctx, cacheKey(id))
	}
	return deleted, err
}

func (s *CachedStore) Search(ctx context.Context, term string) ([]models.Item, error) {
	return s.next.Search(ctx, term)
}
