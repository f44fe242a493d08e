package domain

// PolicySummary descreve uma variante de precificação disponível
type PolicySummary struct {
	Name              string  `json:"name"`
	Active            bool    `json:"active"`
	BaseStrategy      string  `json:"base_strategy"`
	FallbackBasePrice float64 `json:"fallback_base_price"`
	ConfidenceFloor   int     `json:"confidence_floor"`
	ConfidenceCap     int     `json:"confidence_cap"`
}
