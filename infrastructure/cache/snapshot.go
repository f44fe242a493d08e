package cache

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

const snapshotKeyPrefix = "market:snapshot"

// SnapshotCache serializa retratos de mercado por localização e data
type SnapshotCache struct {
	store KVStore
	ttl   time.Duration
}

func NewSnapshotCache(store KVStore, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{store: store, ttl: ttl}
}

func SnapshotKey(location string, date time.Time) string {
	return fmt.Sprintf("%s:%s:%s", snapshotKeyPrefix, location, date.Format("2006-01-02"))
}

// Get retorna false em cache miss ou em qualquer falha de leitura; o cache nunca é fonte de erro
func (c *SnapshotCache) Get(ctx context.Context, location string, date time.Time) (*domain.MarketSnapshot, bool) {
	raw, err := c.store.Get(ctx, SnapshotKey(location, date))
	if err != nil {
		if err != ErrCacheMiss {
			logrus.WithError(err).Warn("Falha ao ler retrato de mercado do cache")
		}
		return nil, false
	}

	var snapshot domain.MarketSnapshot
	if err := jsoniter.UnmarshalFromString(raw, &snapshot); err != nil {
		logrus.WithError(err).Warn("Retrato de mercado inválido no cache")
		return nil, false
	}

	return &snapshot, true
}

func (c *SnapshotCache) Set(ctx context.Context, snapshot *domain.MarketSnapshot) {
	raw, err := jsoniter.MarshalToString(snapshot)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao serializar retrato de mercado")
		return
	}

	if err := c.store.Set(ctx, SnapshotKey(snapshot.Location, snapshot.Date), raw, c.ttl); err != nil {
		logrus.WithError(err).Warn("Falha ao gravar retrato de mercado no cache")
	}
}
