// Package ledger mantém o histórico de preços por hotel, localização e data
package ledger

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/revenue-optimizer-api/internal/config"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/pricing"
	"github.com/vfg2006/revenue-optimizer-api/pkg/utils"
)

const (
	backfillReasoning  = "Backfilled from the stored market snapshot for this date"
	syntheticReasoning = "Synthetic estimate: no market snapshot stored for this date"
)

type HistoryStore interface {
	Record(ctx context.Context, entry domain.HistoryEntry) (bool, error)
	Query(ctx context.Context, hotel domain.HotelConfig, windowDays int, today time.Time) (*domain.HistoricalPerformance, error)
	AverageADR(ctx context.Context, hotelID string, since time.Time) (float64, int, error)
}

// SnapshotReader lê retratos de mercado já gravados
type SnapshotReader interface {
	Stored(ctx context.Context, location domain.Location, date time.Time) (*domain.MarketSnapshot, error)
}

type Service struct {
	repo      repository.PriceHistoryRepository
	snapshots SnapshotReader
	engine    *pricing.Engine
	cfg       config.History
	locks     *keyedMutex
}

func NewService(
	repo repository.PriceHistoryRepository,
	snapshots SnapshotReader,
	engine *pricing.Engine,
	cfg config.History,
) *Service {
	if cfg.BackfillWorkers <= 0 {
		cfg.BackfillWorkers = 5
	}
	if cfg.MaxWindowDays <= 0 {
		cfg.MaxWindowDays = 365
	}

	return &Service{
		repo:      repo,
		snapshots: snapshots,
		engine:    engine,
		cfg:       cfg,
		locks:     newKeyedMutex(),
	}
}

func historyKey(hotelID, location string, date time.Time) string {
	return hotelID + "|" + location + "|" + date.Format(time.DateOnly)
}

// Record grava a entrada se nenhuma de origem mais forte existir para a mesma chave.
// Mesma origem ou mais forte sobrescreve (última escrita vence).
func (s *Service) Record(ctx context.Context, entry domain.HistoryEntry) (bool, error) {
	if entry.Origin.Precedence() == 0 {
		return false, errors.Errorf("origem de histórico inválida: %q", entry.Origin)
	}

	entry.Date = utils.TruncateDay(entry.Date)
	unlock := s.locks.Lock(historyKey(entry.HotelID, entry.Location, entry.Date))
	defer unlock()

	existing, err := s.repo.Get(ctx, entry.HotelID, entry.Location, entry.Date)
	if err != nil {
		return false, errors.Wrap(err, "erro ao buscar histórico existente")
	}

	if existing != nil && existing.Origin.Precedence() > entry.Origin.Precedence() {
		logrus.WithFields(logrus.Fields{
			"hotel_id": entry.HotelID,
			"location": entry.Location,
			"date":     entry.Date.Format(time.DateOnly),
			"existing": existing.Origin,
			"incoming": entry.Origin,
		}).Debug("Entrada de histórico mantida: origem existente tem precedência")
		return false, nil
	}

	written, err := s.repo.Upsert(ctx, &entry)
	if err != nil {
		return false, errors.Wrap(err, "erro ao gravar histórico")
	}

	return written, nil
}

// Query devolve a janela [today-window+1, today] em ordem crescente. Datas sem registro
// são preenchidas a partir do retrato de mercado gravado (persistidas como backfilled) ou,
// sem retrato, por uma estimativa sintética que não é persistida.
func (s *Service) Query(ctx context.Context, hotel domain.HotelConfig, windowDays int, today time.Time) (*domain.HistoricalPerformance, error) {
	if windowDays < 1 || windowDays > s.cfg.MaxWindowDays {
		return nil, errors.Wrapf(pricing.ErrInvalidConfig, "window must be within [1,%d], got %d", s.cfg.MaxWindowDays, windowDays)
	}
	if err := pricing.ValidateHotel(hotel); err != nil {
		return nil, err
	}

	location := hotel.Location.Key()
	end := utils.TruncateDay(today)
	start := end.AddDate(0, 0, -(windowDays - 1))
	allDates := utils.DateRange(start, end)

	stored, err := s.repo.ListRange(ctx, hotel.ID, location, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar histórico")
	}

	byDate := make(map[string]domain.HistoryEntry, len(allDates))
	for _, entry := range stored {
		byDate[entry.Date.Format(time.DateOnly)] = entry
	}

	var missing []time.Time
	for _, date := range allDates {
		if _, ok := byDate[date.Format(time.DateOnly)]; !ok {
			missing = append(missing, date)
		}
	}

	if len(missing) > 0 {
		logrus.WithFields(logrus.Fields{
			"hotel_id":      hotel.ID,
			"location":      location,
			"missing_dates": len(missing),
			"total_dates":   len(allDates),
			"first_missing": missing[0].Format(time.DateOnly),
			"last_missing":  missing[len(missing)-1].Format(time.DateOnly),
		}).Info("Preenchendo datas faltantes do histórico")

		semaphore := make(chan struct{}, s.cfg.BackfillWorkers)
		var (
			wg       sync.WaitGroup
			mutex    sync.Mutex
			firstErr error
		)

		for _, date := range missing {
			wg.Add(1)

			go func(date time.Time) {
				defer wg.Done()

				semaphore <- struct{}{}
				defer func() { <-semaphore }()

				entry, err := s.backfill(ctx, hotel, location, date)

				mutex.Lock()
				defer mutex.Unlock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					return
				}
				byDate[date.Format(time.DateOnly)] = entry
			}(date)
		}

		wg.Wait()

		if firstErr != nil {
			return nil, firstErr
		}
	}

	history := make([]domain.HistoryEntry, 0, len(allDates))
	for _, date := range allDates {
		history = append(history, byDate[date.Format(time.DateOnly)])
	}
	sort.SliceStable(history, func(i, j int) bool { return history[i].Date.Before(history[j].Date) })

	return &domain.HistoricalPerformance{
		HotelID:  hotel.ID,
		Location: location,
		Days:     windowDays,
		History:  history,
		Metrics:  Metrics(history),
	}, nil
}

// Dias passados não têm antecedência real. A reconstrução avalia cada dia como se fosse
// cotado com antecedência neutra, fora das faixas de última hora e de longo prazo.
const backfillLeadDays = 30

func (s *Service) backfill(ctx context.Context, hotel domain.HotelConfig, location string, date time.Time) (domain.HistoryEntry, error) {
	logger := logrus.WithFields(logrus.Fields{
		"hotel_id": hotel.ID,
		"location": location,
		"date":     date.Format(time.DateOnly),
	})

	var snapshot *domain.MarketSnapshot
	if s.snapshots != nil {
		var err error
		snapshot, err = s.snapshots.Stored(ctx, hotel.Location, date)
		if err != nil {
			logger.WithError(err).Warn("Erro ao ler retrato de mercado gravado, usando estimativa sintética")
			snapshot = nil
		}
	}

	in := pricing.PricingInput{
		Hotel:          hotel,
		Date:           date,
		EvaluationDate: date.AddDate(0, 0, -backfillLeadDays),
	}
	if snapshot != nil {
		in.Competitors = snapshot.Competitors
		in.Events = snapshot.Events
	}

	ev, err := s.engine.Evaluate(in, 0)
	if err != nil {
		return domain.HistoryEntry{}, err
	}

	if snapshot == nil {
		entry := ev.HistoryEntry(hotel.ID, location, domain.OriginSynthetic, syntheticReasoning)
		return entry, nil
	}

	entry := ev.HistoryEntry(hotel.ID, location, domain.OriginBackfilled, backfillReasoning)
	if _, err := s.Record(ctx, entry); err != nil {
		logger.WithError(err).Warn("Erro ao persistir entrada preenchida do histórico")
	}

	return entry, nil
}

func (s *Service) AverageADR(ctx context.Context, hotelID string, since time.Time) (float64, int, error) {
	return s.repo.AverageADR(ctx, hotelID, since)
}

// Metrics resume a janela: receita total, médias de ocupação, ADR e RevPAR e contagem por origem
func Metrics(history []domain.HistoryEntry) domain.PerformanceMetrics {
	metrics := domain.PerformanceMetrics{
		DataPoints: len(history),
		ByOrigin:   make(map[domain.Origin]int),
	}

	if len(history) == 0 {
		return metrics
	}

	var occupancy, adr, revpar float64
	for _, entry := range history {
		metrics.TotalRevenue += entry.Revenue
		occupancy += entry.Occupancy
		adr += entry.ADR
		revpar += entry.RevPAR
		metrics.ByOrigin[entry.Origin]++
	}

	n := float64(len(history))
	metrics.TotalRevenue = utils.RoundWithTwoDecimalPlace(metrics.TotalRevenue)
	metrics.AverageOccupancy = utils.RoundWithOneDecimalPlace(occupancy / n)
	metrics.AverageADR = utils.RoundWithTwoDecimalPlace(adr / n)
	metrics.AverageRevPAR = utils.RoundWithTwoDecimalPlace(revpar / n)

	return metrics
}
