package pricing

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/vfg2006/revenue-optimizer-api/pkg/utils"
)

type Engine struct {
	policy Policy
}

func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

func (e *Engine) Policy() Policy {
	return e.policy
}

type PricingInput struct {
	Hotel          domain.HotelConfig
	Date           time.Time
	EvaluationDate time.Time
	Competitors    []domain.CompetitorRate
	Events         []domain.MarketEvent
}

type PriceQuote struct {
	Date            time.Time
	Price           float64
	RawPrice        float64
	Clamped         bool
	BasePrice       float64
	BasePositioning string
	Multipliers     domain.Multipliers
	DemandLevel     domain.DemandLevel
	DominantEvent   *domain.MarketEvent
	SameDayEvents   []domain.MarketEvent
	LeadDays        int
	Stats           *Stats
}

// Recommend calcula preço base × demanda × dia da semana × sazonalidade × antecedência,
// arredondado em centavos e limitado a [min, max] como último passo.
func (e *Engine) Recommend(in PricingInput) (PriceQuote, error) {
	if err := ValidateHotel(in.Hotel); err != nil {
		return PriceQuote{}, err
	}

	quote := PriceQuote{Date: utils.TruncateDay(in.Date)}

	stats, err := Summarize(CompetitorPrices(in.Competitors))
	if err == nil {
		quote.Stats = &stats
	}
	quote.BasePrice, quote.BasePositioning = e.basePrice(in.Hotel, quote.Stats)

	quote.SameDayEvents = eventsOn(in.Events, in.Date)
	quote.DominantEvent = DominantEvent(quote.SameDayEvents)
	quote.DemandLevel = domain.DemandLow
	quote.Multipliers.Demand = 1.0
	if quote.DominantEvent != nil {
		quote.DemandLevel = domain.DemandFromImpact(quote.DominantEvent.Impact)
		if m, ok := e.policy.DemandMultipliers[quote.DominantEvent.Impact]; ok {
			quote.Multipliers.Demand = m
		}
	}

	quote.Multipliers.DayOfWeek = e.policy.Calendar.DayOfWeekMultiplier(in.Date.Weekday())
	quote.Multipliers.Seasonal = e.policy.Calendar.SeasonalMultiplier(in.Hotel.Location, in.Date.Month())

	quote.LeadDays = utils.DaysBetween(in.EvaluationDate, in.Date)
	if quote.LeadDays < 0 {
		quote.LeadDays = 0
	}
	quote.Multipliers.LeadTime = e.leadTimeMultiplier(quote.LeadDays, quote.DemandLevel)

	quote.RawPrice = quote.BasePrice *
		quote.Multipliers.Demand *
		quote.Multipliers.DayOfWeek *
		quote.Multipliers.Seasonal *
		quote.Multipliers.LeadTime

	rounded := round2(quote.RawPrice)
	quote.Price = utils.Clamp(rounded, in.Hotel.MinPrice, in.Hotel.MaxPrice)
	quote.Clamped = quote.Price != rounded

	return quote, nil
}

func (e *Engine) basePrice(hotel domain.HotelConfig, stats *Stats) (float64, string) {
	if stats == nil {
		return e.policy.FallbackBasePrice, "fallback"
	}

	if e.policy.BaseStrategy == BaseMeanDiscount {
		return stats.Mean * e.policy.MeanFactor, "competitive"
	}

	switch {
	case hotel.StarRating >= 4:
		return stats.P75, "premium"
	case hotel.StarRating == 3:
		return stats.Median, "market rate"
	default:
		return stats.P25, "value"
	}
}

func (e *Engine) leadTimeMultiplier(leadDays int, demand domain.DemandLevel) float64 {
	for _, band := range e.policy.LeadTime {
		if leadDays > band.MaxDays {
			continue
		}
		if band.MinDemand != "" && demandRank(demand) < demandRank(band.MinDemand) {
			continue
		}
		return band.Multiplier
	}
	return 1.0
}

func eventsOn(events []domain.MarketEvent, date time.Time) []domain.MarketEvent {
	matched := make([]domain.MarketEvent, 0)
	for _, ev := range events {
		if utils.EqualDate(ev.Date, date) {
			matched = append(matched, ev)
		}
	}
	return matched
}

// DominantEvent escolhe o evento de maior impacto; empates ficam com o primeiro nome em ordem alfabética
func DominantEvent(events []domain.MarketEvent) *domain.MarketEvent {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]domain.MarketEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Impact.Rank() != sorted[j].Impact.Rank() {
			return sorted[i].Impact.Rank() > sorted[j].Impact.Rank()
		}
		return sorted[i].Name < sorted[j].Name
	})

	return &sorted[0]
}

// MarketPosition compara o preço final com os quartis do mercado
func MarketPosition(price float64, stats *Stats) string {
	if stats == nil {
		return "market-rate"
	}
	switch {
	case price > stats.P75:
		return "premium"
	case price < stats.P25:
		return "value"
	default:
		return "competitive"
	}
}

// PricingStrategy rotula a recomendação pela distância entre preço final e preço base
func PricingStrategy(price, base float64) string {
	if base <= 0 {
		return "standard"
	}
	ratio := price / base
	switch {
	case ratio > 1.15:
		return "surge"
	case ratio < 0.95:
		return "discount"
	default:
		return "standard"
	}
}

// PacingStatus estima o ritmo de reservas pela antecedência e pelo fim de semana
func (e *Engine) PacingStatus(leadDays int, date time.Time) string {
	switch {
	case leadDays < 14 && e.policy.Calendar.IsWeekend(date):
		return "ahead of forecast"
	case leadDays > 60:
		return "behind forecast"
	default:
		return "on track"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
