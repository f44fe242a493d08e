package domain

import "time"

type CompetitorRate struct {
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	StarRating int       `json:"stars"`
	Brand      string    `json:"brand,omitempty"`
	Location   string    `json:"location,omitempty"`
	Distance   string    `json:"distance,omitempty"`
	Source     string    `json:"source,omitempty"`
	ObservedAt time.Time `json:"observed_at"`
}

type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
	ImpactPeak   Impact = "peak"
)

// Rank ordena os impactos: peak > high > medium > low. Valores desconhecidos valem 0.
func (i Impact) Rank() int {
	switch i {
	case ImpactPeak:
		return 4
	case ImpactHigh:
		return 3
	case ImpactMedium:
		return 2
	case ImpactLow:
		return 1
	}
	return 0
}

func (i Impact) Valid() bool {
	return i.Rank() > 0
}

type MarketEvent struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Impact      Impact    `json:"impact"`
	Source      string    `json:"source,omitempty"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type,omitempty"`
}

// SourceStatus registra se uma fonte de mercado respondeu na requisição
type SourceStatus struct {
	Name       string `json:"name"`
	OK         bool   `json:"ok"`
	Count      int    `json:"count"`
	Cached     bool   `json:"cached,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// MarketSnapshot é o retrato de concorrentes e eventos de uma localização em uma data
type MarketSnapshot struct {
	Location    string           `json:"location"`
	Date        time.Time        `json:"date"`
	Competitors []CompetitorRate `json:"competitors"`
	Events      []MarketEvent    `json:"events"`
	Sources     []SourceStatus   `json:"sources,omitempty"`
}

// FailedSources conta quantas fontes não responderam
func (s *MarketSnapshot) FailedSources() int {
	failed := 0
	for _, src := range s.Sources {
		if !src.OK {
			failed++
		}
	}
	return failed
}

// CompetitorSnapshot é a última coleta de concorrentes gravada para uma localização
type CompetitorSnapshot struct {
	Location    string           `json:"location"`
	CollectedAt *time.Time       `json:"collected_at,omitempty"`
	Competitors []CompetitorRate `json:"competitors"`
	Stats       *CompetitorStats `json:"competitor_stats,omitempty"`
}
