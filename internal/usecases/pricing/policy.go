package pricing

import (
	"fmt"
	"math"

	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

type BaseStrategy string

const (
	// BasePercentile escolhe p75, mediana ou p25 conforme a categoria do hotel
	BasePercentile BaseStrategy = "percentile"
	// BaseMeanDiscount aplica um percentual fixo sobre a média dos concorrentes
	BaseMeanDiscount BaseStrategy = "mean-discount"
)

const (
	PolicyLive = "live"
	PolicyDemo = "demo"
)

// LeadTimeBand vale para antecedências até MaxDays. MinDemand vazio aceita qualquer demanda.
type LeadTimeBand struct {
	MaxDays    int
	Multiplier float64
	MinDemand  domain.DemandLevel
}

// Band concede Bonus quando o valor medido é >= Min
type Band struct {
	Min   int
	Bonus int
}

type ConfidencePolicy struct {
	Base                    int
	CompetitorBands         []Band
	EventBands              []Band
	StabilityBonus          int
	StabilityMaxStdDev      float64
	StabilityMinCompetitors int
	SweetSpotMinDays        int
	SweetSpotMaxDays        int
	SweetSpotBonus          int
	LongLeadDays            int
	LongLeadPenalty         int
	FailedSourcePenalty     int
	Floor                   int
	Cap                     int
}

type OccupancyPolicy struct {
	DemandBump map[domain.DemandLevel]float64
	// Elasticity em pontos percentuais de ocupação para cada 100% acima da média
	Elasticity float64
	Floor      float64
	Ceiling    float64
}

// Policy reúne as tabelas de uma variante de precificação. As variantes nunca se misturam.
type Policy struct {
	Name              string
	BaseStrategy      BaseStrategy
	MeanFactor        float64
	FallbackBasePrice float64
	DemandMultipliers map[domain.Impact]float64
	LeadTime          []LeadTimeBand
	Calendar          SeasonalCalendar
	Occupancy         OccupancyPolicy
	Confidence        ConfidencePolicy
	RankOffset        float64
}

func defaultDemandMultipliers() map[domain.Impact]float64 {
	return map[domain.Impact]float64{
		domain.ImpactPeak:   1.45,
		domain.ImpactHigh:   1.35,
		domain.ImpactMedium: 1.15,
		domain.ImpactLow:    1.00,
	}
}

func defaultOccupancy() OccupancyPolicy {
	return OccupancyPolicy{
		DemandBump: map[domain.DemandLevel]float64{
			domain.DemandLow:    0,
			domain.DemandMedium: 10,
			domain.DemandHigh:   20,
			domain.DemandPeak:   25,
		},
		Elasticity: 50,
		Floor:      20,
		Ceiling:    98,
	}
}

// LivePolicy posiciona o preço base por percentil de acordo com as estrelas do hotel
func LivePolicy() Policy {
	return Policy{
		Name:              PolicyLive,
		BaseStrategy:      BasePercentile,
		FallbackBasePrice: 150,
		DemandMultipliers: defaultDemandMultipliers(),
		LeadTime: []LeadTimeBand{
			{MaxDays: 2, Multiplier: 1.15},
			{MaxDays: 6, Multiplier: 1.10},
			{MaxDays: 60, Multiplier: 1.00},
			{MaxDays: math.MaxInt32, Multiplier: 0.95},
		},
		Calendar:  DefaultCalendar(),
		Occupancy: defaultOccupancy(),
		Confidence: ConfidencePolicy{
			Base:                    60,
			CompetitorBands:         []Band{{Min: 8, Bonus: 15}, {Min: 5, Bonus: 10}, {Min: 3, Bonus: 5}},
			EventBands:              []Band{{Min: 3, Bonus: 10}, {Min: 1, Bonus: 5}},
			StabilityBonus:          5,
			StabilityMaxStdDev:      40,
			StabilityMinCompetitors: 2,
			SweetSpotMinDays:        7,
			SweetSpotMaxDays:        30,
			SweetSpotBonus:          10,
			LongLeadDays:            90,
			LongLeadPenalty:         5,
			FailedSourcePenalty:     10,
			Floor:                   50,
			Cap:                     95,
		},
		RankOffset: 0.05,
	}
}

// DemoPolicy usa 92% da média dos concorrentes e só sobe o preço de última hora com demanda alta
func DemoPolicy() Policy {
	return Policy{
		Name:              PolicyDemo,
		BaseStrategy:      BaseMeanDiscount,
		MeanFactor:        0.92,
		FallbackBasePrice: 150,
		DemandMultipliers: defaultDemandMultipliers(),
		LeadTime: []LeadTimeBand{
			{MaxDays: 6, Multiplier: 1.10, MinDemand: domain.DemandHigh},
			{MaxDays: 60, Multiplier: 1.00},
			{MaxDays: math.MaxInt32, Multiplier: 0.95},
		},
		Calendar:  DefaultCalendar(),
		Occupancy: defaultOccupancy(),
		Confidence: ConfidencePolicy{
			Base:                70,
			CompetitorBands:     []Band{{Min: 8, Bonus: 15}, {Min: 5, Bonus: 10}, {Min: 3, Bonus: 5}},
			EventBands:          []Band{{Min: 1, Bonus: 10}},
			SweetSpotMinDays:    7,
			SweetSpotMaxDays:    30,
			SweetSpotBonus:      10,
			LongLeadDays:        90,
			LongLeadPenalty:     5,
			FailedSourcePenalty: 10,
			Floor:               65,
			Cap:                 95,
		},
		RankOffset: 0.05,
	}
}

// PolicyByName devolve a variante pedida com o preço de fallback configurado
func PolicyByName(name string, fallbackBasePrice float64) (Policy, error) {
	var p Policy
	switch name {
	case PolicyLive:
		p = LivePolicy()
	case PolicyDemo:
		p = DemoPolicy()
	default:
		return Policy{}, fmt.Errorf("unknown pricing policy %q", name)
	}

	if fallbackBasePrice > 0 {
		p.FallbackBasePrice = fallbackBasePrice
	}
	return p, nil
}

func demandRank(level domain.DemandLevel) int {
	switch level {
	case domain.DemandPeak:
		return 4
	case domain.DemandHigh:
		return 3
	case domain.DemandMedium:
		return 2
	case domain.DemandLow:
		return 1
	}
	return 0
}
