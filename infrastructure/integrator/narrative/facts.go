// Package narrative produz os textos explicativos das recomendações a partir de fatos estruturados
package narrative

import (
	"time"

	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

// Facts é tudo que o explicador recebe; nenhum texto é montado no motor de preços
type Facts struct {
	Hotel           domain.HotelConfig      `json:"hotel"`
	Location        string                  `json:"location"`
	Date            time.Time               `json:"date"`
	Price           float64                 `json:"recommended_price"`
	BasePrice       float64                 `json:"base_price"`
	BasePositioning string                  `json:"base_positioning"`
	Clamped         bool                    `json:"clamped"`
	Multipliers     domain.Multipliers      `json:"multipliers"`
	DemandLevel     domain.DemandLevel      `json:"demand_level"`
	PricingStrategy string                  `json:"pricing_strategy"`
	MarketPosition  string                  `json:"market_position"`
	PacingStatus    string                  `json:"pacing_status"`
	LeadDays        int                     `json:"lead_days"`
	Weekend         bool                    `json:"weekend"`
	Confidence      int                     `json:"confidence"`
	KPIs            domain.KPISet           `json:"kpis"`
	Stats           *domain.CompetitorStats `json:"competitor_stats,omitempty"`
	Events          []domain.MarketEvent    `json:"events"`
	DominantEvent   *domain.MarketEvent     `json:"dominant_event,omitempty"`
	FailedSources   []string                `json:"failed_sources,omitempty"`
}

type Narrative struct {
	Reasoning     string                  `json:"reasoning"`
	Analysis      domain.DetailedAnalysis `json:"detailed_analysis"`
	MarketFactors []string                `json:"market_factors"`
}
