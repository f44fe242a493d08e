package domain

import "time"

// Origin indica de onde veio um registro do histórico
type Origin string

const (
	OriginReal       Origin = "real"
	OriginBackfilled Origin = "backfilled"
	OriginSynthetic  Origin = "synthetic"
)

// Precedence define quem pode sobrescrever quem: real > backfilled > synthetic
func (o Origin) Precedence() int {
	switch o {
	case OriginReal:
		return 3
	case OriginBackfilled:
		return 2
	case OriginSynthetic:
		return 1
	}
	return 0
}

type HistoryEntry struct {
	HotelID    string    `json:"hotel_id"`
	Location   string    `json:"location"`
	Date       time.Time `json:"date"`
	Price      float64   `json:"price"`
	Occupancy  float64   `json:"occupancy"`
	RevPAR     float64   `json:"revpar"`
	ADR        float64   `json:"adr"`
	Revenue    float64   `json:"revenue"`
	Confidence int       `json:"confidence"`
	Reasoning  string    `json:"reasoning,omitempty"`
	Origin     Origin    `json:"origin"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PerformanceMetrics struct {
	TotalRevenue     float64        `json:"total_revenue"`
	AverageOccupancy float64        `json:"avg_occupancy"`
	AverageADR       float64        `json:"avg_adr"`
	AverageRevPAR    float64        `json:"avg_revpar"`
	DataPoints       int            `json:"data_points"`
	ByOrigin         map[Origin]int `json:"by_origin"`
}

type HistoricalPerformance struct {
	HotelID  string             `json:"hotel_id,omitempty"`
	Location string             `json:"location"`
	Days     int                `json:"days"`
	History  []HistoryEntry     `json:"history"`
	Metrics  PerformanceMetrics `json:"performance_metrics"`
}

type HistoryRequest struct {
	HotelID  string
	Location string
	Days     int
}
