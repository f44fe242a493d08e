package domain

import "time"

type DemandForecastDay struct {
	Date            time.Time   `json:"date"`
	DemandLevel     DemandLevel `json:"demand_level"`
	Driver          string      `json:"driver"`
	EventCount      int         `json:"event_count"`
	IndicativePrice float64     `json:"indicative_price"`
}

type ForecastRequest struct {
	Location    string         `json:"location"`
	HotelID     string         `json:"hotel_id,omitempty"`
	Hotel       *HotelSettings `json:"hotel_config,omitempty"`
	HorizonDays int            `json:"horizon_days"`
}

type DemandForecast struct {
	Location string              `json:"location"`
	Start    time.Time           `json:"start"`
	Forecast []DemandForecastDay `json:"forecast"`
	Sources  []SourceStatus      `json:"sources"`
}
