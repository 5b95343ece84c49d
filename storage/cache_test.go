package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"items-api/models"
	"items-api/storage"
)

// countingStore records how often each operation reaches the backend.
type countingStore struct {
	item     *models.Item
	getCalls int
}

func (s *countingStore) Create(ctx context.Context, patch models.ItemPatch) (*models.Item, error) {
	return s.item, nil
}

func (s *countingStore) GetAll(ctx context.Context) ([]models.Item, error) {
	return nil, nil
}

func (s *countingStore) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	s.getCalls++
	if s.item != nil && s.item.ID == id {
		return s.item, nil
	}
	return nil, nil
}

func (s *countingStore) Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.Item, error) {
	return s.item, nil
}

func (s *countingStore) Delete(ctx context.Context, id int64) (bool, error) {
	return true, nil
}

func (s *countingStore) Search(ctx context.Context, term string) ([]models.Item, error) {
	return nil, nil
}

func newCachedStore(t *testing.T, backend storage.Store) *storage.CachedStore {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewCachedStore(backend, client)
}

func testItem() *models.Item {
	price := 49.99
	now := time.Now().UTC()
	return &models.Item{
		ID: 1, Name: "Cached", Price: &price,
		CreatedAt: now, UpdatedAt: now, IsActive: true,
	}
}

func TestCachedGetByIDHitsBackendOnce(t *testing.T) {
	backend := &countingStore{item: testItem()}
	cached := newCachedStore(t, backend)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := cached.GetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Cached", got.Name)
		assert.Equal(t, 49.99, *got.Price)
	}
	assert.Equal(t, 1, backend.getCalls, "subsequent reads served from cache")
}

func TestCachedGetByIDDoesNotCacheAbsence(t *testing.T) {
	backend := &countingStore{}
	cached := newCachedStore(t, backend)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := cached.GetByID(ctx, 7)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
	assert.Equal(t, 2, backend.getCalls, "not-found is never cached")
}

func TestCachedUpdateInvalidates(t *testing.T) {
	backend := &countingStore{item: testItem()}
	cached := newCachedStore(t, backend)
	ctx := context.Background()

	_, err := cached.GetByID(ctx, 1)
	require.NoError(t, err)

	name := "Renamed"
	_, err = cached.Update(ctx, 1, models.ItemPatch{Name: &name})
	require.NoError(t, err)

	_, err = cached.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, backend.getCalls, "update invalidates the cached entry")
}

func TestCachedDeleteInvalidates(t *testing.T) {
	backend := &countingStore{item: testItem()}
	cached := newCachedStore(t, backend)
	ctx := context.Background()

	_, err := cached.GetByID(ctx, 1)
	require.NoError(t, err)

	deleted, err := cached.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = cached.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, backend.getCalls, "delete invalidates the cached entry")
}

func TestCacheFaultDegradesToBackend(t *testing.T) {
	backend := &countingStore{item: testItem()}
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	cached := storage.NewCachedStore(backend, client)
	srv.Close()

	got, err := cached.GetByID(context.Background(), 1)
	require.NoError(t, err, "a dead cache is a miss, not a failure")
	require.NotNil(t, got)
	assert.Equal(t, 1, backend.getCalls)
}
