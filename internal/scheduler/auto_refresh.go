package scheduler

//go:generate mockgen -source=auto_refresh.go -destination=mocks/auto_refresh.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/revenue-optimizer-api/internal/config"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

// Refresher gera a recomendação do dia de um hotel cadastrado
type Refresher interface {
	GetRecommendation(ctx context.Context, request domain.RecommendationRequest) (*domain.PriceRecommendation, error)
}

// AutoRefreshConfig representa a configuração da atualização automática de preços
type AutoRefreshConfig struct {
	Interval time.Duration
	Enabled  bool
}

type refreshResult struct {
	At         time.Time `json:"at"`
	Price      float64   `json:"price,omitempty"`
	Confidence int       `json:"confidence,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// AutoRefreshService mantém um job por hotel em modo automático, identificado pelo ID do hotel
type AutoRefreshService struct {
	scheduler   *gocron.Scheduler
	config      AutoRefreshConfig
	hotelRepo   repository.HotelRepository
	refresher   Refresher
	baseCtx     context.Context
	mutex       sync.Mutex
	running     map[string]bool
	lastResults map[string]refreshResult
	now         func() time.Time
}

// NewAutoRefreshService cria o agendador de atualização automática
func NewAutoRefreshService(
	hotelRepo repository.HotelRepository,
	refresher Refresher,
	appConfig *config.Config,
) *AutoRefreshService {
	refreshConfig := AutoRefreshConfig{
		Interval: appConfig.AutoRefresh.Interval,
		Enabled:  appConfig.AutoRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)
	// Uma execução por hotel de cada vez; a próxima espera a anterior terminar
	scheduler.SingletonModeAll()

	logrus.WithFields(logrus.Fields{
		"interval": refreshConfig.Interval.String(),
		"enabled":  refreshConfig.Enabled,
	}).Info("Configuração da atualização automática carregada")

	return &AutoRefreshService{
		scheduler:   scheduler,
		config:      refreshConfig,
		hotelRepo:   hotelRepo,
		refresher:   refresher,
		baseCtx:     context.Background(),
		running:     make(map[string]bool),
		lastResults: make(map[string]refreshResult),
		now:         time.Now,
	}
}

// Start agenda os hotéis que já estão em modo automático e inicia o agendador
func (s *AutoRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização automática desabilitada por configuração")
		return nil
	}

	s.mutex.Lock()
	s.baseCtx = ctx
	s.mutex.Unlock()

	hotels, err := s.hotelRepo.ListAutoMode(ctx)
	if err != nil {
		return fmt.Errorf("erro ao buscar hotéis em modo automático: %w", err)
	}

	for _, hotel := range hotels {
		if err := s.Schedule(*hotel); err != nil {
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"interval": s.config.Interval.String(),
		"hotels":   len(hotels),
	}).Info("Iniciando agendador de atualização automática")

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização automática")
		s.scheduler.Stop()
	}()

	return nil
}

// Schedule cria ou substitui o job do hotel
func (s *AutoRefreshService) Schedule(hotel domain.HotelConfig) error {
	if !s.config.Enabled {
		return nil
	}

	s.removeJob(hotel.ID)

	_, err := s.scheduler.Every(s.config.Interval).Tag(hotel.ID).Do(s.refreshHotel, hotel.ID)
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização automática do hotel %s: %w", hotel.ID, err)
	}

	logrus.WithFields(logrus.Fields{
		"hotel_id": hotel.ID,
		"location": hotel.Location.Key(),
		"interval": s.config.Interval.String(),
	}).Info("Atualização automática agendada")

	return nil
}

// Unschedule remove o job do hotel imediatamente
func (s *AutoRefreshService) Unschedule(hotelID string) {
	if s.removeJob(hotelID) {
		logrus.WithField("hotel_id", hotelID).Info("Atualização automática removida")
	}

	s.mutex.Lock()
	delete(s.lastResults, hotelID)
	s.mutex.Unlock()
}

func (s *AutoRefreshService) removeJob(hotelID string) bool {
	err := s.scheduler.RemoveByTag(hotelID)
	switch {
	case err == nil:
		return true
	case errors.Is(err, gocron.ErrJobNotFoundWithTag):
		return false
	default:
		logrus.WithError(err).WithField("hotel_id", hotelID).Warn("Erro ao remover job de atualização automática")
		return false
	}
}

// refreshHotel gera a recomendação do dia, que fica gravada no histórico como registro real
func (s *AutoRefreshService) refreshHotel(hotelID string) {
	s.mutex.Lock()
	if s.running[hotelID] {
		s.mutex.Unlock()
		logrus.WithField("hotel_id", hotelID).Info("Atualização do hotel já em andamento, ignorando")
		return
	}
	s.running[hotelID] = true
	baseCtx := s.baseCtx
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		delete(s.running, hotelID)
		s.mutex.Unlock()
	}()

	ctx := baseCtx
	if s.config.Interval > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(baseCtx, s.config.Interval)
		defer cancel()
	}

	startTime := s.now()
	result := refreshResult{At: startTime}

	recommendation, err := s.refresher.GetRecommendation(ctx, domain.RecommendationRequest{HotelID: hotelID})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"hotel_id": hotelID,
			"error":    err.Error(),
		}).Error("Erro na atualização automática do hotel")
		result.Error = err.Error()
	} else {
		result.Price = recommendation.RecommendedPrice
		result.Confidence = recommendation.Confidence
		logrus.WithFields(logrus.Fields{
			"hotel_id":   hotelID,
			"price":      recommendation.RecommendedPrice,
			"confidence": recommendation.Confidence,
			"duration":   time.Since(startTime).String(),
		}).Info("Atualização automática concluída")
	}

	s.mutex.Lock()
	s.lastResults[hotelID] = result
	s.mutex.Unlock()
}

// TriggerManualSync atualiza agora todos os hotéis em modo automático
func (s *AutoRefreshService) TriggerManualSync() {
	s.mutex.Lock()
	ctx := s.baseCtx
	s.mutex.Unlock()

	hotels, err := s.hotelRepo.ListAutoMode(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar hotéis para atualização manual")
		return
	}

	logrus.WithField("hotels", len(hotels)).Info("Iniciando atualização manual dos hotéis em modo automático")

	for _, hotel := range hotels {
		go s.refreshHotel(hotel.ID)
	}
}

// ScheduledHotels lista os IDs com job ativo
func (s *AutoRefreshService) ScheduledHotels() []string {
	ids := make([]string, 0, s.scheduler.Len())
	for _, job := range s.scheduler.Jobs() {
		ids = append(ids, job.Tags()...)
	}
	sort.Strings(ids)
	return ids
}

// GetStatus retorna o status atual do agendador
func (s *AutoRefreshService) GetStatus() map[string]any {
	s.mutex.Lock()
	results := make(map[string]refreshResult, len(s.lastResults))
	for id, result := range s.lastResults {
		results[id] = result
	}
	s.mutex.Unlock()

	return map[string]any{
		"enabled":          s.config.Enabled,
		"interval":         s.config.Interval.String(),
		"running":          s.scheduler.IsRunning(),
		"scheduled_hotels": s.ScheduledHotels(),
		"last_results":     results,
	}
}
