package pricing

import (
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/vfg2006/revenue-optimizer-api/pkg/utils"
)

// PriceDelta é a distância relativa do preço para a média do mercado (0 sem concorrentes)
func PriceDelta(price float64, stats *Stats) float64 {
	if stats == nil || stats.Mean <= 0 {
		return 0
	}
	return (price - stats.Mean) / stats.Mean
}

// ProjectOccupancy parte da ocupação base, soma o bônus de demanda e desconta a elasticidade de preço
func (e *Engine) ProjectOccupancy(hotel domain.HotelConfig, demand domain.DemandLevel, priceDelta float64) float64 {
	op := e.policy.Occupancy

	occ := hotel.BaseOccupancy + op.DemandBump[demand] - op.Elasticity*priceDelta

	return round1(utils.Clamp(occ, op.Floor, op.Ceiling))
}
