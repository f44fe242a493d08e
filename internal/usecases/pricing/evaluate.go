package pricing

import "github.com/vfg2006/revenue-optimizer-api/internal/domain"

// Evaluation é o resultado completo de um dia: preço, ocupação projetada, KPIs e confiança
type Evaluation struct {
	Quote      PriceQuote
	Occupancy  float64
	KPIs       domain.KPISet
	Confidence int
}

// Evaluate encadeia preço, ocupação, KPIs e confiança para um único dia.
// failedSources entra na confiança; eventos contam todos os conhecidos para a localização.
func (e *Engine) Evaluate(in PricingInput, failedSources int) (Evaluation, error) {
	quote, err := e.Recommend(in)
	if err != nil {
		return Evaluation{}, err
	}

	occupancy := e.ProjectOccupancy(in.Hotel, quote.DemandLevel, PriceDelta(quote.Price, quote.Stats))

	kpis, err := ComputeKPIs(in.Hotel.TotalRooms, quote.Price, occupancy)
	if err != nil {
		return Evaluation{}, err
	}

	confidenceIn := ConfidenceInput{
		EventCount:    len(in.Events),
		LeadDays:      quote.LeadDays,
		FailedSources: failedSources,
	}
	if quote.Stats != nil {
		confidenceIn.CompetitorCount = quote.Stats.Count
		confidenceIn.PriceStdDev = quote.Stats.StdDev
	}

	return Evaluation{
		Quote:      quote,
		Occupancy:  occupancy,
		KPIs:       kpis,
		Confidence: e.Score(confidenceIn),
	}, nil
}

// HistoryEntry converte a avaliação em uma entrada de histórico com a origem informada
func (ev Evaluation) HistoryEntry(hotelID, location string, origin domain.Origin, reasoning string) domain.HistoryEntry {
	return domain.HistoryEntry{
		HotelID:    hotelID,
		Location:   location,
		Date:       ev.Quote.Date,
		Price:      ev.Quote.Price,
		Occupancy:  ev.KPIs.ProjectedOccupancy,
		RevPAR:     ev.KPIs.RevPAR,
		ADR:        ev.KPIs.ADR,
		Revenue:    ev.KPIs.ProjectedRevenue,
		Confidence: ev.Confidence,
		Reasoning:  reasoning,
		Origin:     origin,
	}
}
