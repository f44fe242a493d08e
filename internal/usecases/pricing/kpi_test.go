package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

func TestComputeKPIs(t *testing.T) {
	kpis, err := ComputeKPIs(100, 199.999, 72.46)
	require.NoError(t, err)

	assert.Equal(t, 200.0, kpis.ADR)
	assert.Equal(t, 72.5, kpis.ProjectedOccupancy)
	assert.Equal(t, 73, kpis.RoomsSold)
	assert.Equal(t, 145.0, kpis.RevPAR)
	assert.Equal(t, 14600.0, kpis.ProjectedRevenue)
}

func TestComputeKPIs_InvariantsHoldExactly(t *testing.T) {
	for _, rooms := range []int{1, 7, 45, 120, 333} {
		for _, price := range []float64{79.99, 123.456, 150, 287.33, 499.995} {
			for _, occ := range []float64{20, 33.33, 64.95, 72.5, 98} {
				kpis, err := ComputeKPIs(rooms, price, occ)
				require.NoError(t, err)

				assert.Equal(t, kpis.ADR*kpis.ProjectedOccupancy/100, kpis.RevPAR)
				assert.Equal(t, float64(kpis.RoomsSold)*kpis.ADR, kpis.ProjectedRevenue)
				assert.Equal(t, int(math.Round(float64(rooms)*kpis.ProjectedOccupancy/100)), kpis.RoomsSold)
			}
		}
	}
}

func TestComputeKPIs_InvalidRooms(t *testing.T) {
	_, err := ComputeKPIs(0, 150, 70)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestEngine_ProjectOccupancy(t *testing.T) {
	e := NewEngine(LivePolicy())
	hotel := threeStarHotel()

	tests := []struct {
		name     string
		base     float64
		demand   domain.DemandLevel
		delta    float64
		expected float64
	}{
		{"Demanda média no preço de mercado", 70, domain.DemandMedium, 0, 80},
		{"Demanda alta 10% acima da média", 70, domain.DemandHigh, 0.10, 85},
		{"Preço 20% abaixo da média aumenta ocupação", 60, domain.DemandLow, -0.20, 70},
		{"Pico limitado a 98", 95, domain.DemandPeak, 0, 98},
		{"Ocupação mínima limitada a 20", 10, domain.DemandLow, 0.5, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hotel.BaseOccupancy = tt.base
			assert.InDelta(t, tt.expected, e.ProjectOccupancy(hotel, tt.demand, tt.delta), 1e-9)
		})
	}
}

func TestPriceDelta(t *testing.T) {
	assert.InDelta(t, 0.1, PriceDelta(220, &Stats{Mean: 200}), 1e-9)
	assert.Equal(t, 0.0, PriceDelta(220, nil))
}
