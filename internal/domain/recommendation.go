package domain

import "time"

type DemandLevel string

const (
	DemandLow    DemandLevel = "low"
	DemandMedium DemandLevel = "medium"
	DemandHigh   DemandLevel = "high"
	DemandPeak   DemandLevel = "peak"
)

// DemandFromImpact converte o impacto do evento dominante em nível de demanda
func DemandFromImpact(i Impact) DemandLevel {
	switch i {
	case ImpactPeak:
		return DemandPeak
	case ImpactHigh:
		return DemandHigh
	case ImpactMedium:
		return DemandMedium
	}
	return DemandLow
}

type KPISet struct {
	ADR                float64 `json:"adr"`
	RevPAR             float64 `json:"revpar"`
	ProjectedOccupancy float64 `json:"projected_occupancy"`
	RoomsSold          int     `json:"rooms_sold"`
	ProjectedRevenue   float64 `json:"projected_revenue"`
}

type Multipliers struct {
	Demand    float64 `json:"demand"`
	DayOfWeek float64 `json:"day_of_week"`
	Seasonal  float64 `json:"seasonal"`
	LeadTime  float64 `json:"lead_time"`
}

type CompetitorStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

type DetailedAnalysis struct {
	MarketOverview       string `json:"market_overview"`
	CompetitiveLandscape string `json:"competitive_landscape"`
	DemandDrivers        string `json:"demand_drivers"`
	PricingStrategy      string `json:"pricing_strategy"`
	RiskFactors          string `json:"risk_factors"`
	RevenueOptimization  string `json:"revenue_optimization"`
}

type PriceRecommendation struct {
	HotelID          string           `json:"hotel_id,omitempty"`
	Location         string           `json:"location"`
	Date             time.Time        `json:"date"`
	RecommendedPrice float64          `json:"recommended_price"`
	BasePrice        float64          `json:"base_price"`
	BasePositioning  string           `json:"base_positioning"`
	Multipliers      Multipliers      `json:"multipliers"`
	Confidence       int              `json:"confidence"`
	DemandLevel      DemandLevel      `json:"demand_level"`
	PricingStrategy  string           `json:"pricing_strategy"`
	MarketPosition   string           `json:"market_position"`
	PacingStatus     string           `json:"pacing_status"`
	LeadDays         int              `json:"lead_days"`
	KPIs             KPISet           `json:"kpis"`
	Reasoning        string           `json:"reasoning"`
	DetailedAnalysis DetailedAnalysis `json:"detailed_analysis"`
	MarketFactors    []string         `json:"market_factors"`
	Competitors      []CompetitorRate `json:"competitors"`
	MarketEvents     []MarketEvent    `json:"market_events"`
	CompetitorStats  *CompetitorStats `json:"competitor_stats,omitempty"`
	Sources          []SourceStatus   `json:"sources"`
	PolicyName       string           `json:"policy"`
	GeneratedAt      time.Time        `json:"generated_at"`
}

type RecommendationRequest struct {
	Location string         `json:"location"`
	Date     string         `json:"date"`
	HotelID  string         `json:"hotel_id,omitempty"`
	Hotel    *HotelSettings `json:"hotel_config,omitempty"`
}

type OverrideRequest struct {
	DesiredRank int              `json:"desired_rank"`
	Competitors []CompetitorRate `json:"competitors"`
	HotelID     string           `json:"hotel_id,omitempty"`
	Hotel       *HotelSettings   `json:"hotel_config,omitempty"`
	Location    string           `json:"location,omitempty"`
	Date        string           `json:"date,omitempty"`
}

type OverrideResult struct {
	OverridePrice float64 `json:"override_price"`
	KPIs          KPISet  `json:"kpis"`
	Positioning   string  `json:"positioning"`
	RequestedRank int     `json:"requested_rank"`
	AchievedRank  int     `json:"achieved_rank"`
	Clamped       bool    `json:"clamped"`
	Confidence    int     `json:"confidence"`
	Occupancy     float64 `json:"projected_occupancy"`
}
