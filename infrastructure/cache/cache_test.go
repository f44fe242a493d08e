package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

func TestMemoryKVStore_Expiration(t *testing.T) {
	store := NewMemoryKVStore()
	now := time.Date(2025, 5, 14, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	now = now.Add(time.Minute)
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryKVStore_NoTTLNeverExpires(t *testing.T) {
	store := NewMemoryKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v", 0))
	store.now = func() time.Time { return time.Now().Add(24 * 365 * time.Hour) }

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("redis down")
}

func (failingStore) Set(context.Context, string, string, time.Duration) error {
	return errors.New("redis down")
}

func (failingStore) Ping(context.Context) error {
	return errors.New("redis down")
}

func TestSnapshotCache(t *testing.T) {
	date := time.Date(2025, 5, 14, 0, 0, 0, 0, time.UTC)
	snapshot := &domain.MarketSnapshot{
		Location: "boston,usa",
		Date:     date,
		Competitors: []domain.CompetitorRate{
			{Name: "Seaport Hotel", Price: 240, StarRating: 4},
		},
		Events: []domain.MarketEvent{
			{Name: "Boston Calling", Date: date, Impact: domain.ImpactHigh},
		},
	}

	t.Run("Grava e lê o retrato", func(t *testing.T) {
		c := NewSnapshotCache(NewMemoryKVStore(), time.Minute)
		ctx := context.Background()

		_, ok := c.Get(ctx, "boston,usa", date)
		assert.False(t, ok)

		c.Set(ctx, snapshot)
		got, ok := c.Get(ctx, "boston,usa", date)

		require.True(t, ok)
		assert.Equal(t, "Seaport Hotel", got.Competitors[0].Name)
		assert.Equal(t, domain.ImpactHigh, got.Events[0].Impact)
	})

	t.Run("Falha do armazenamento vira cache miss", func(t *testing.T) {
		c := NewSnapshotCache(failingStore{}, time.Minute)

		c.Set(context.Background(), snapshot)
		_, ok := c.Get(context.Background(), "boston,usa", date)

		assert.False(t, ok)
	})

	t.Run("Chave inclui localização e data", func(t *testing.T) {
		assert.Equal(t, "market:snapshot:boston,usa:2025-05-14", SnapshotKey("boston,usa", date))
	})
}
