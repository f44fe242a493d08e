// Package market coleta tarifas de concorrentes e eventos de mercado para uma localização
package market

//go:generate mockgen -source=aggregator.go -destination=mocks/aggregator.go -package=mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/cache"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/pricing"
)

const defaultStarRating = 3

type Collector interface {
	Collect(ctx context.Context, location domain.Location, date time.Time) *domain.MarketSnapshot
	Stored(ctx context.Context, location domain.Location, date time.Time) (*domain.MarketSnapshot, error)
}

type Aggregator struct {
	competitors CompetitorSource
	events      EventSource
	cache       *cache.SnapshotCache
	store       repository.MarketSnapshotRepository
	timeout     time.Duration
}

// NewAggregator aceita fontes nulas; fonte não configurada não aparece nos status
func NewAggregator(
	competitors CompetitorSource,
	events EventSource,
	snapshotCache *cache.SnapshotCache,
	store repository.MarketSnapshotRepository,
	timeout time.Duration,
) *Aggregator {
	return &Aggregator{
		competitors: competitors,
		events:      events,
		cache:       snapshotCache,
		store:       store,
		timeout:     timeout,
	}
}

type sourceResult struct {
	status      domain.SourceStatus
	competitors []domain.CompetitorRate
	events      []domain.MarketEvent
}

// Collect nunca falha: fontes com erro ou timeout viram listas vazias e ficam registradas em Sources
func (a *Aggregator) Collect(ctx context.Context, location domain.Location, date time.Time) *domain.MarketSnapshot {
	key := location.Key()
	logger := logrus.WithFields(logrus.Fields{
		"location": key,
		"date":     date.Format(time.DateOnly),
	})

	if a.cache != nil {
		if snapshot, ok := a.cache.Get(ctx, key, date); ok {
			for i := range snapshot.Sources {
				snapshot.Sources[i].Cached = true
			}
			logger.Debug("Retrato de mercado servido do cache")
			return snapshot
		}
	}

	var (
		wg      sync.WaitGroup
		results []sourceResult
		mu      sync.Mutex
	)

	collect := func(name string, fetch func(context.Context) (sourceResult, error)) {
		defer wg.Done()

		sourceCtx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()

		started := time.Now()
		result, err := fetch(sourceCtx)
		result.status.Name = name
		result.status.DurationMs = time.Since(started).Milliseconds()

		if err != nil {
			wrapped := errors.Wrapf(pricing.ErrSourceUnavailable, "%s: %v", name, err)
			result = sourceResult{status: result.status}
			result.status.OK = false
			result.status.Error = wrapped.Error()
			logger.WithError(err).WithField("source", name).Warn("Fonte de mercado indisponível, seguindo sem ela")
		} else {
			result.status.OK = true
		}

		mu.Lock()
		results = append(results, result)
		mu.Unlock()
	}

	if a.competitors != nil {
		wg.Add(1)
		go collect(a.competitors.Name(), func(ctx context.Context) (sourceResult, error) {
			rates, err := a.competitors.FetchCompetitors(ctx, location, date)
			if err != nil {
				return sourceResult{}, err
			}
			rates = sanitizeCompetitors(rates, key)
			return sourceResult{competitors: rates, status: domain.SourceStatus{Count: len(rates)}}, nil
		})
	}

	if a.events != nil {
		wg.Add(1)
		go collect(a.events.Name(), func(ctx context.Context) (sourceResult, error) {
			events, err := a.events.FetchEvents(ctx, location, date)
			if err != nil {
				return sourceResult{}, err
			}
			events = sanitizeEvents(events)
			return sourceResult{events: events, status: domain.SourceStatus{Count: len(events)}}, nil
		})
	}

	wg.Wait()

	snapshot := &domain.MarketSnapshot{
		Location:    key,
		Date:        date,
		Competitors: []domain.CompetitorRate{},
		Events:      []domain.MarketEvent{},
		Sources:     []domain.SourceStatus{},
	}

	sort.Slice(results, func(i, j int) bool { return results[i].status.Name < results[j].status.Name })
	for _, r := range results {
		snapshot.Competitors = append(snapshot.Competitors, r.competitors...)
		snapshot.Events = append(snapshot.Events, r.events...)
		snapshot.Sources = append(snapshot.Sources, r.status)
	}

	logger.WithFields(logrus.Fields{
		"competitors":    len(snapshot.Competitors),
		"events":         len(snapshot.Events),
		"failed_sources": snapshot.FailedSources(),
	}).Info("Retrato de mercado coletado")

	a.persist(ctx, snapshot)

	if a.cache != nil && snapshot.FailedSources() == 0 && len(snapshot.Sources) > 0 {
		a.cache.Set(ctx, snapshot)
	}

	return snapshot
}

// Stored devolve o retrato gravado de uma data passada, usado no preenchimento do histórico
func (a *Aggregator) Stored(ctx context.Context, location domain.Location, date time.Time) (*domain.MarketSnapshot, error) {
	if a.store == nil {
		return nil, nil
	}
	return a.store.GetSnapshot(ctx, location.Key(), date)
}

func (a *Aggregator) persist(ctx context.Context, snapshot *domain.MarketSnapshot) {
	if a.store == nil {
		return
	}

	if len(snapshot.Competitors) > 0 {
		if err := a.store.SaveCompetitors(ctx, snapshot.Location, snapshot.Date, snapshot.Competitors); err != nil {
			logrus.WithError(err).WithField("location", snapshot.Location).Error("Erro ao gravar concorrentes")
		}
	}

	if len(snapshot.Events) > 0 {
		if err := a.store.SaveEvents(ctx, snapshot.Location, snapshot.Events); err != nil {
			logrus.WithError(err).WithField("location", snapshot.Location).Error("Erro ao gravar eventos")
		}
	}
}

func sanitizeCompetitors(rates []domain.CompetitorRate, location string) []domain.CompetitorRate {
	clean := make([]domain.CompetitorRate, 0, len(rates))
	for _, r := range rates {
		if strings.TrimSpace(r.Name) == "" || r.Price <= 0 {
			continue
		}
		if r.StarRating < 1 || r.StarRating > 5 {
			r.StarRating = defaultStarRating
		}
		if r.Location == "" {
			r.Location = location
		}
		clean = append(clean, r)
	}
	return clean
}

func sanitizeEvents(events []domain.MarketEvent) []domain.MarketEvent {
	clean := make([]domain.MarketEvent, 0, len(events))
	for _, e := range events {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		if !e.Impact.Valid() {
			e.Impact = domain.ImpactLow
		}
		clean = append(clean, e)
	}
	return clean
}
