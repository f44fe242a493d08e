package pricing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/vfg2006/revenue-optimizer-api/pkg/utils"
)

const MaxForecastHorizon = 90

type ForecastInput struct {
	Hotel       domain.HotelConfig
	Start       time.Time
	HorizonDays int
	Events      []domain.MarketEvent
	Competitors []domain.CompetitorRate
}

// Forecast classifica a demanda de cada dia do horizonte. Dias sem eventos da fonte
// recebem os feriados do calendário e, na falta deles, uma entrada padrão; nenhum dia é omitido.
func (e *Engine) Forecast(in ForecastInput) ([]domain.DemandForecastDay, error) {
	if in.HorizonDays < 1 || in.HorizonDays > MaxForecastHorizon {
		return nil, errors.Wrapf(ErrInvalidConfig, "horizon must be within [1,%d], got %d", MaxForecastHorizon, in.HorizonDays)
	}
	if err := ValidateHotel(in.Hotel); err != nil {
		return nil, err
	}

	start := utils.TruncateDay(in.Start)
	days := make([]domain.DemandForecastDay, 0, in.HorizonDays)

	for i := 0; i < in.HorizonDays; i++ {
		date := start.AddDate(0, 0, i)

		dayEvents := eventsOn(in.Events, date)
		if len(dayEvents) == 0 {
			if holiday, ok := e.policy.Calendar.Holiday(date); ok {
				dayEvents = append(dayEvents, holiday)
			}
		}

		weekend := e.policy.Calendar.IsWeekend(date)
		day := domain.DemandForecastDay{
			Date:        date,
			DemandLevel: ClassifyDemand(dayEvents, weekend),
			Driver:      demandDriver(dayEvents, weekend),
			EventCount:  len(dayEvents),
		}

		quote, err := e.Recommend(PricingInput{
			Hotel:          in.Hotel,
			Date:           date,
			EvaluationDate: start,
			Competitors:    in.Competitors,
			Events:         dayEvents,
		})
		if err == nil {
			day.IndicativePrice = quote.Price
		}

		days = append(days, day)
	}

	return days, nil
}

// ClassifyDemand: qualquer evento peak => peak; 2+ eventos high => high;
// 1 high, algum medium ou fim de semana => medium; caso contrário low.
func ClassifyDemand(events []domain.MarketEvent, weekend bool) domain.DemandLevel {
	var high, medium int
	for _, ev := range events {
		switch ev.Impact {
		case domain.ImpactPeak:
			return domain.DemandPeak
		case domain.ImpactHigh:
			high++
		case domain.ImpactMedium:
			medium++
		}
	}

	switch {
	case high >= 2:
		return domain.DemandHigh
	case high == 1 || medium > 0 || weekend:
		return domain.DemandMedium
	default:
		return domain.DemandLow
	}
}

func demandDriver(events []domain.MarketEvent, weekend bool) string {
	if dominant := DominantEvent(events); dominant != nil && dominant.Impact.Rank() > domain.ImpactLow.Rank() {
		return dominant.Name
	}
	if weekend {
		return "Weekend travel"
	}
	return "Standard demand"
}
