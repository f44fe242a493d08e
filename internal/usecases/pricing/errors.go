// Package pricing implementa o motor de otimização de receita: estatísticas de concorrentes,
// cadeia de multiplicadores, projeção de ocupação, KPIs, confiança, previsão de demanda,
// solução de ranking e economia com reservas diretas. Todas as funções são puras.
package pricing

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

var (
	ErrInsufficientData  = errors.New("insufficient market data")
	ErrInvalidConfig     = errors.New("invalid hotel configuration")
	ErrInvalidRank       = errors.New("desired rank out of range")
	ErrSourceUnavailable = errors.New("market data source unavailable")
)

// ValidateHotel rejeita configurações inválidas antes de qualquer cálculo
func ValidateHotel(h domain.HotelConfig) error {
	switch {
	case h.TotalRooms <= 0:
		return errors.Wrapf(ErrInvalidConfig, "total_rooms must be positive, got %d", h.TotalRooms)
	case h.MinPrice < 0:
		return errors.Wrapf(ErrInvalidConfig, "min_price must not be negative, got %.2f", h.MinPrice)
	case h.MinPrice > h.MaxPrice:
		return errors.Wrapf(ErrInvalidConfig, "min_price %.2f greater than max_price %.2f", h.MinPrice, h.MaxPrice)
	case h.StarRating < 1 || h.StarRating > 5:
		return errors.Wrapf(ErrInvalidConfig, "star_rating must be within [1,5], got %d", h.StarRating)
	case h.BaseOccupancy < 0 || h.BaseOccupancy > 100:
		return errors.Wrapf(ErrInvalidConfig, "base_occupancy must be within [0,100], got %.1f", h.BaseOccupancy)
	}
	return nil
}
