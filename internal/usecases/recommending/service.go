// Package recommending orquestra coleta de mercado, motor de preços, narrativa e histórico
package recommending

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/integrator/market"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/integrator/narrative"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/revenue-optimizer-api/internal/config"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/ledger"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/pricing"
	"github.com/vfg2006/revenue-optimizer-api/pkg/utils"
)

const (
	defaultHorizonDays = 14
	adrLookbackDays    = 30
)

// ErrInvalidRequest cobre parâmetros malformados que não chegam ao motor de preços
var ErrInvalidRequest = errors.New("invalid request")

type RecommendationService interface {
	GetRecommendation(ctx context.Context, request domain.RecommendationRequest) (*domain.PriceRecommendation, error)
	OverridePrice(ctx context.Context, request domain.OverrideRequest) (*domain.OverrideResult, error)
	GetDemandForecast(ctx context.Context, request domain.ForecastRequest) (*domain.DemandForecast, error)
	GetDirectBookingSavings(ctx context.Context, request domain.SavingsRequest) (*domain.DirectBookingSavings, error)
	GetAncillaryOpportunities(ctx context.Context, request domain.AncillaryRequest) (*domain.AncillaryResponse, error)
	GetHistoricalPerformance(ctx context.Context, request domain.HistoryRequest) (*domain.HistoricalPerformance, error)
	GetCompetitors(ctx context.Context, location string, date string) (*domain.CompetitorSnapshot, error)
	ListPolicies() []domain.PolicySummary
}

// HotelResolver devolve o hotel cadastrado ou valida a configuração enviada na requisição
type HotelResolver interface {
	Resolve(ctx context.Context, id string, inline *domain.HotelSettings) (domain.HotelConfig, error)
}

type Service struct {
	hotels      HotelResolver
	collector   market.Collector
	snapshots   repository.MarketSnapshotRepository
	otaProfiles repository.OTAProfileRepository
	explainer   narrative.Explainer
	history     ledger.HistoryStore
	engine      *pricing.Engine
	savings     pricing.SavingsPolicy
	historyCfg  config.History
	now         func() time.Time
}

func NewService(
	hotels HotelResolver,
	collector market.Collector,
	snapshots repository.MarketSnapshotRepository,
	otaProfiles repository.OTAProfileRepository,
	explainer narrative.Explainer,
	history ledger.HistoryStore,
	engine *pricing.Engine,
	savings pricing.SavingsPolicy,
	historyCfg config.History,
) *Service {
	if historyCfg.DefaultWindowDays <= 0 {
		historyCfg.DefaultWindowDays = 14
	}

	return &Service{
		hotels:      hotels,
		collector:   collector,
		snapshots:   snapshots,
		otaProfiles: otaProfiles,
		explainer:   explainer,
		history:     history,
		engine:      engine,
		savings:     savings,
		historyCfg:  historyCfg,
		now:         time.Now,
	}
}

// GetRecommendation coleta o mercado, calcula o preço do dia, gera a narrativa e grava
// o resultado no histórico como registro real
func (s *Service) GetRecommendation(ctx context.Context, request domain.RecommendationRequest) (*domain.PriceRecommendation, error) {
	hotel, err := s.hotels.Resolve(ctx, request.HotelID, request.Hotel)
	if err != nil {
		return nil, err
	}

	hotel.Location, err = resolveLocation(request.Location, hotel.Location)
	if err != nil {
		return nil, err
	}

	now := s.now()
	date, err := parseTargetDate(request.Date, now)
	if err != nil {
		return nil, err
	}

	logger := logrus.WithFields(logrus.Fields{
		"hotel_id": hotel.ID,
		"location": hotel.Location.Key(),
		"date":     date.Format(time.DateOnly),
	})

	snapshot := s.collector.Collect(ctx, hotel.Location, date)

	evaluation, err := s.engine.Evaluate(pricing.PricingInput{
		Hotel:          hotel,
		Date:           date,
		EvaluationDate: now,
		Competitors:    snapshot.Competitors,
		Events:         snapshot.Events,
	}, snapshot.FailedSources())
	if err != nil {
		return nil, err
	}

	facts := s.facts(hotel, evaluation, snapshot)
	story := s.explainer.Explain(ctx, facts)

	recommendation := &domain.PriceRecommendation{
		HotelID:          hotel.ID,
		Location:         hotel.Location.Key(),
		Date:             evaluation.Quote.Date,
		RecommendedPrice: evaluation.Quote.Price,
		BasePrice:        utils.RoundWithTwoDecimalPlace(evaluation.Quote.BasePrice),
		BasePositioning:  evaluation.Quote.BasePositioning,
		Multipliers:      evaluation.Quote.Multipliers,
		Confidence:       evaluation.Confidence,
		DemandLevel:      evaluation.Quote.DemandLevel,
		PricingStrategy:  facts.PricingStrategy,
		MarketPosition:   facts.MarketPosition,
		PacingStatus:     facts.PacingStatus,
		LeadDays:         evaluation.Quote.LeadDays,
		KPIs:             evaluation.KPIs,
		Reasoning:        story.Reasoning,
		DetailedAnalysis: story.Analysis,
		MarketFactors:    story.MarketFactors,
		Competitors:      snapshot.Competitors,
		MarketEvents:     snapshot.Events,
		CompetitorStats:  facts.Stats,
		Sources:          snapshot.Sources,
		PolicyName:       s.engine.Policy().Name,
		GeneratedAt:      now,
	}

	entry := evaluation.HistoryEntry(hotel.ID, hotel.Location.Key(), domain.OriginReal, story.Reasoning)
	if _, err := s.history.Record(ctx, entry); err != nil {
		logger.WithError(err).Warn("Erro ao gravar recomendação no histórico")
	}

	logger.WithFields(logrus.Fields{
		"price":       recommendation.RecommendedPrice,
		"confidence":  recommendation.Confidence,
		"competitors": len(snapshot.Competitors),
		"events":      len(snapshot.Events),
	}).Info("Recomendação gerada")

	return recommendation, nil
}

// OverridePrice calcula o preço que leva o hotel à posição pedida e recalcula ocupação,
// KPIs e confiança a partir dele. Sem concorrentes na requisição, usa a coleta da localização.
func (s *Service) OverridePrice(ctx context.Context, request domain.OverrideRequest) (*domain.OverrideResult, error) {
	hotel, err := s.hotels.Resolve(ctx, request.HotelID, request.Hotel)
	if err != nil {
		return nil, err
	}

	now := s.now()
	date, err := parseTargetDate(request.Date, now)
	if err != nil {
		return nil, err
	}

	competitors := request.Competitors
	var (
		events []domain.MarketEvent
		failed int
	)

	if len(competitors) == 0 {
		location, err := resolveLocation(request.Location, hotel.Location)
		if err != nil {
			return nil, errors.Wrap(pricing.ErrInsufficientData, "no competitors given and no location to collect them")
		}
		hotel.Location = location

		snapshot := s.collector.Collect(ctx, location, date)
		competitors, events, failed = snapshot.Competitors, snapshot.Events, snapshot.FailedSources()
	}

	solution, err := s.engine.SolveForRank(request.DesiredRank, competitors, hotel)
	if err != nil {
		return nil, err
	}

	quote, err := s.engine.Recommend(pricing.PricingInput{
		Hotel:          hotel,
		Date:           date,
		EvaluationDate: now,
		Competitors:    competitors,
		Events:         events,
	})
	if err != nil {
		return nil, err
	}

	occupancy := s.engine.ProjectOccupancy(hotel, quote.DemandLevel, pricing.PriceDelta(solution.Price, quote.Stats))

	kpis, err := pricing.ComputeKPIs(hotel.TotalRooms, solution.Price, occupancy)
	if err != nil {
		return nil, err
	}

	confidence := s.engine.Score(pricing.ConfidenceInput{
		CompetitorCount: quote.Stats.Count,
		EventCount:      len(events),
		PriceStdDev:     quote.Stats.StdDev,
		LeadDays:        quote.LeadDays,
		FailedSources:   failed,
	})

	logrus.WithFields(logrus.Fields{
		"hotel_id":       hotel.ID,
		"requested_rank": solution.RequestedRank,
		"achieved_rank":  solution.AchievedRank,
		"price":          solution.Price,
		"clamped":        solution.Clamped,
	}).Info("Preço manual calculado")

	return &domain.OverrideResult{
		OverridePrice: solution.Price,
		KPIs:          kpis,
		Positioning:   solution.Positioning,
		RequestedRank: solution.RequestedRank,
		AchievedRank:  solution.AchievedRank,
		Clamped:       solution.Clamped,
		Confidence:    confidence,
		Occupancy:     kpis.ProjectedOccupancy,
	}, nil
}

// GetDemandForecast classifica a demanda dos próximos dias a partir dos eventos coletados hoje
func (s *Service) GetDemandForecast(ctx context.Context, request domain.ForecastRequest) (*domain.DemandForecast, error) {
	hotel, err := s.hotels.Resolve(ctx, request.HotelID, request.Hotel)
	if err != nil {
		return nil, err
	}

	hotel.Location, err = resolveLocation(request.Location, hotel.Location)
	if err != nil {
		return nil, err
	}

	horizon := request.HorizonDays
	if horizon == 0 {
		horizon = defaultHorizonDays
	}
	if horizon < 1 || horizon > pricing.MaxForecastHorizon {
		return nil, errors.Wrapf(pricing.ErrInvalidConfig, "horizon must be within [1,%d], got %d", pricing.MaxForecastHorizon, horizon)
	}

	start := utils.TruncateDay(s.now())
	snapshot := s.collector.Collect(ctx, hotel.Location, start)

	days, err := s.engine.Forecast(pricing.ForecastInput{
		Hotel:       hotel,
		Start:       start,
		HorizonDays: horizon,
		Events:      snapshot.Events,
		Competitors: snapshot.Competitors,
	})
	if err != nil {
		return nil, err
	}

	return &domain.DemandForecast{
		Location: hotel.Location.Key(),
		Start:    start,
		Forecast: days,
		Sources:  snapshot.Sources,
	}, nil
}

// GetDirectBookingSavings usa a ADR média dos últimos 30 dias do histórico e, sem histórico,
// o meio da faixa de preço do hotel
func (s *Service) GetDirectBookingSavings(ctx context.Context, request domain.SavingsRequest) (*domain.DirectBookingSavings, error) {
	hotel, err := s.hotels.Resolve(ctx, request.HotelID, request.Hotel)
	if err != nil {
		return nil, err
	}

	now := s.now()
	averageRate := (hotel.MinPrice + hotel.MaxPrice) / 2

	var profiles []domain.OTACommissionProfile
	if hotel.ID != "" {
		profiles, err = s.otaProfiles.ListByHotel(ctx, hotel.ID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar perfis de OTA")
		}

		since := utils.TruncateDay(now).AddDate(0, 0, -adrLookbackDays)
		adr, count, err := s.history.AverageADR(ctx, hotel.ID, since)
		switch {
		case err != nil:
			logrus.WithError(err).WithField("hotel_id", hotel.ID).
				Warn("Erro ao calcular ADR média, usando o meio da faixa de preço")
		case count > 0:
			averageRate = adr
		}
	}

	savings, err := pricing.ComputeDirectBookingSavings(s.savings, pricing.SavingsInput{
		Hotel:       hotel,
		Profiles:    profiles,
		AverageRate: averageRate,
		DaysInMonth: utils.DaysInMonth(now),
	})
	if err != nil {
		return nil, err
	}

	return &savings, nil
}

func (s *Service) GetAncillaryOpportunities(ctx context.Context, request domain.AncillaryRequest) (*domain.AncillaryResponse, error) {
	hotel, err := s.hotels.Resolve(ctx, request.HotelID, request.Hotel)
	if err != nil {
		return nil, err
	}

	opportunities, err := s.explainer.Ancillary(ctx, hotel)
	if err != nil {
		return nil, err
	}

	return &domain.AncillaryResponse{
		HotelID:       hotel.ID,
		Opportunities: opportunities,
	}, nil
}

// GetHistoricalPerformance aceita um hotel cadastrado ou apenas a localização, que usa
// a configuração padrão de hotel
func (s *Service) GetHistoricalPerformance(ctx context.Context, request domain.HistoryRequest) (*domain.HistoricalPerformance, error) {
	var hotel domain.HotelConfig

	switch {
	case request.HotelID != "":
		resolved, err := s.hotels.Resolve(ctx, request.HotelID, nil)
		if err != nil {
			return nil, err
		}
		hotel = resolved
	case request.Location != "":
		hotel = domain.DefaultHotelConfig(domain.ParseLocation(request.Location))
	default:
		return nil, errors.Wrap(ErrInvalidRequest, "location or hotel_id is required")
	}

	days := request.Days
	if days == 0 {
		days = s.historyCfg.DefaultWindowDays
	}

	return s.history.Query(ctx, hotel, days, s.now())
}

// GetCompetitors devolve a coleta gravada na data pedida ou, sem data, a mais recente
func (s *Service) GetCompetitors(ctx context.Context, location string, date string) (*domain.CompetitorSnapshot, error) {
	if location == "" {
		return nil, errors.Wrap(ErrInvalidRequest, "location is required")
	}
	key := domain.ParseLocation(location).Key()

	result := &domain.CompetitorSnapshot{Location: key, Competitors: []domain.CompetitorRate{}}

	if date != "" {
		day, err := parseTargetDate(date, s.now())
		if err != nil {
			return nil, err
		}

		snapshot, err := s.snapshots.GetSnapshot(ctx, key, day)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar concorrentes")
		}
		if snapshot != nil && len(snapshot.Competitors) > 0 {
			result.Competitors = snapshot.Competitors
			result.CollectedAt = &day
		}
	} else {
		competitors, collectedAt, err := s.snapshots.LatestCompetitors(ctx, key)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar concorrentes")
		}
		if len(competitors) > 0 {
			result.Competitors = competitors
			result.CollectedAt = &collectedAt
		}
	}

	if stats, err := pricing.Summarize(pricing.CompetitorPrices(result.Competitors)); err == nil {
		result.Stats = stats.ToDomain()
	}

	return result, nil
}

// ListPolicies lista as variantes de precificação e indica a que está em uso
func (s *Service) ListPolicies() []domain.PolicySummary {
	active := s.engine.Policy()

	summaries := make([]domain.PolicySummary, 0, 2)
	for _, name := range []string{pricing.PolicyLive, pricing.PolicyDemo} {
		policy, err := pricing.PolicyByName(name, active.FallbackBasePrice)
		if err != nil {
			continue
		}
		summaries = append(summaries, domain.PolicySummary{
			Name:              policy.Name,
			Active:            policy.Name == active.Name,
			BaseStrategy:      string(policy.BaseStrategy),
			FallbackBasePrice: policy.FallbackBasePrice,
			ConfidenceFloor:   policy.Confidence.Floor,
			ConfidenceCap:     policy.Confidence.Cap,
		})
	}

	return summaries
}

func (s *Service) facts(hotel domain.HotelConfig, evaluation pricing.Evaluation, snapshot *domain.MarketSnapshot) narrative.Facts {
	quote := evaluation.Quote

	facts := narrative.Facts{
		Hotel:           hotel,
		Location:        hotel.Location.String(),
		Date:            quote.Date,
		Price:           quote.Price,
		BasePrice:       utils.RoundWithTwoDecimalPlace(quote.BasePrice),
		BasePositioning: quote.BasePositioning,
		Clamped:         quote.Clamped,
		Multipliers:     quote.Multipliers,
		DemandLevel:     quote.DemandLevel,
		PricingStrategy: pricing.PricingStrategy(quote.Price, quote.BasePrice),
		MarketPosition:  pricing.MarketPosition(quote.Price, quote.Stats),
		PacingStatus:    s.engine.PacingStatus(quote.LeadDays, quote.Date),
		LeadDays:        quote.LeadDays,
		Weekend:         s.engine.Policy().Calendar.IsWeekend(quote.Date),
		Confidence:      evaluation.Confidence,
		KPIs:            evaluation.KPIs,
		Events:          snapshot.Events,
		DominantEvent:   quote.DominantEvent,
	}

	if quote.Stats != nil {
		facts.Stats = quote.Stats.ToDomain()
	}

	for _, source := range snapshot.Sources {
		if !source.OK {
			facts.FailedSources = append(facts.FailedSources, source.Name)
		}
	}

	return facts
}

// resolveLocation prefere a localização da requisição; mantém a do hotel quando são a mesma
// para não perder a região cadastrada
func resolveLocation(requested string, hotelLocation domain.Location) (domain.Location, error) {
	location := hotelLocation
	if requested != "" {
		parsed := domain.ParseLocation(requested)
		if parsed.Key() != hotelLocation.Key() {
			location = parsed
		}
	}

	if location.City == "" {
		return domain.Location{}, errors.Wrap(ErrInvalidRequest, "location is required")
	}

	return location, nil
}

// parseTargetDate aceita YYYY-MM-DD; vazio significa hoje
func parseTargetDate(raw string, now time.Time) (time.Time, error) {
	date, err := utils.ParseDate(raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrInvalidRequest, "invalid date %q, expected YYYY-MM-DD", raw)
	}
	if date == nil {
		return utils.TruncateDay(now), nil
	}
	return utils.TruncateDay(*date), nil
}
