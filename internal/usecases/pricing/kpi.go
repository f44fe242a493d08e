package pricing

import (
	"math"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

// ComputeKPIs arredonda ADR (centavos) e ocupação (uma casa) antes de derivar RevPAR e receita,
// que não são arredondados de novo. Assim revpar == adr*occ/100 e revenue == roomsSold*adr valem exatamente.
func ComputeKPIs(totalRooms int, price, occupancy float64) (domain.KPISet, error) {
	if totalRooms <= 0 {
		return domain.KPISet{}, errors.Wrapf(ErrInvalidConfig, "total_rooms must be positive, got %d", totalRooms)
	}

	adr := round2(price)
	occ := round1(occupancy)
	roomsSold := int(math.Round(float64(totalRooms) * occ / 100))

	return domain.KPISet{
		ADR:                adr,
		RevPAR:             adr * occ / 100,
		ProjectedOccupancy: occ,
		RoomsSold:          roomsSold,
		ProjectedRevenue:   float64(roomsSold) * adr,
	}, nil
}
