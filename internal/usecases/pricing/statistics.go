package pricing

import (
	"math"
	"sort"

	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

type Stats struct {
	Count  int
	Mean   float64
	Median float64
	P25    float64
	P75    float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize calcula média, mediana, quartis e desvio padrão populacional.
// Preços não positivos são descartados; sem dados retorna ErrInsufficientData.
func Summarize(prices []float64) (Stats, error) {
	sorted := make([]float64, 0, len(prices))
	for _, p := range prices {
		if p > 0 {
			sorted = append(sorted, p)
		}
	}

	if len(sorted) == 0 {
		return Stats{}, ErrInsufficientData
	}

	sort.Float64s(sorted)

	var sum float64
	for _, p := range sorted {
		sum += p
	}
	mean := sum / float64(len(sorted))

	var sq float64
	for _, p := range sorted {
		sq += (p - mean) * (p - mean)
	}

	return Stats{
		Count:  len(sorted),
		Mean:   mean,
		Median: percentile(sorted, 0.5),
		P25:    percentile(sorted, 0.25),
		P75:    percentile(sorted, 0.75),
		StdDev: math.Sqrt(sq / float64(len(sorted))),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}, nil
}

// percentile interpola linearmente na posição p*(n-1) de uma lista já ordenada
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}

	frac := rank - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}

func CompetitorPrices(rates []domain.CompetitorRate) []float64 {
	prices := make([]float64, 0, len(rates))
	for _, r := range rates {
		if r.Price > 0 {
			prices = append(prices, r.Price)
		}
	}
	return prices
}

func (s Stats) ToDomain() *domain.CompetitorStats {
	return &domain.CompetitorStats{
		Count:  s.Count,
		Mean:   round2(s.Mean),
		Median: round2(s.Median),
		P25:    round2(s.P25),
		P75:    round2(s.P75),
		StdDev: round2(s.StdDev),
		Min:    s.Min,
		Max:    s.Max,
	}
}
