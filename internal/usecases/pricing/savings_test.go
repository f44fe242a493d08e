package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

func TestComputeDirectBookingSavings(t *testing.T) {
	hotel := threeStarHotel()

	tests := []struct {
		name     string
		profiles []domain.OTACommissionProfile
		validate func(t *testing.T, s domain.DirectBookingSavings, err error)
	}{
		{
			name: "Dois canais - comissão ponderada pela fatia de reservas",
			profiles: []domain.OTACommissionProfile{
				{Channel: "Booking.com", CommissionRate: 0.15, BookingShare: 0.3},
				{Channel: "Expedia", CommissionRate: 0.18, BookingShare: 0.2},
			},
			validate: func(t *testing.T, s domain.DirectBookingSavings, err error) {
				require.NoError(t, err)
				assert.Equal(t, 420000.0, s.MonthlyRevenue)
				assert.InDelta(t, 0.5, s.TotalOTABookingShare, 1e-9)
				assert.InDelta(t, 0.162, s.WeightedCommissionRate, 1e-9)
				assert.InDelta(t, 34020.0, s.MonthlyOTACommission, 0.001)
				assert.InDelta(t, 8505.0, s.PotentialMonthlySavings, 0.001)
				assert.False(t, s.UsedDefaultProfile)
				assert.False(t, s.ShareExceedsTotal)
			},
		},
		{
			name:     "Sem perfis - usa a premissa padrão",
			profiles: nil,
			validate: func(t *testing.T, s domain.DirectBookingSavings, err error) {
				require.NoError(t, err)
				assert.True(t, s.UsedDefaultProfile)
				assert.InDelta(t, 30240.0, s.MonthlyOTACommission, 0.001)
				assert.InDelta(t, 7560.0, s.PotentialMonthlySavings, 0.001)
			},
		},
		{
			name: "Fatias somando mais de 100% - sinaliza sem bloquear",
			profiles: []domain.OTACommissionProfile{
				{Channel: "A", CommissionRate: 0.2, BookingShare: 0.7},
				{Channel: "B", CommissionRate: 0.1, BookingShare: 0.6},
			},
			validate: func(t *testing.T, s domain.DirectBookingSavings, err error) {
				require.NoError(t, err)
				assert.True(t, s.ShareExceedsTotal)
			},
		},
		{
			name: "Comissão fora de [0,1] é configuração inválida",
			profiles: []domain.OTACommissionProfile{
				{Channel: "A", CommissionRate: 1.5, BookingShare: 0.2},
			},
			validate: func(t *testing.T, _ domain.DirectBookingSavings, err error) {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ComputeDirectBookingSavings(DefaultSavingsPolicy(), SavingsInput{
				Hotel:       hotel,
				Profiles:    tt.profiles,
				AverageRate: 200,
				DaysInMonth: 30,
			})
			tt.validate(t, s, err)
		})
	}
}

func TestComputeDirectBookingSavings_SavingsNeverExceedCommission(t *testing.T) {
	hotel := threeStarHotel()
	for _, fraction := range []float64{0, 0.25, 0.999, 1, 3} {
		for _, rate := range []float64{0.01, 0.15, 0.333, 1} {
			for _, share := range []float64{0, 0.1, 0.45, 1} {
				s, err := ComputeDirectBookingSavings(
					SavingsPolicy{ShiftableFraction: fraction},
					SavingsInput{
						Hotel:       hotel,
						Profiles:    []domain.OTACommissionProfile{{Channel: "X", CommissionRate: rate, BookingShare: share}},
						AverageRate: 187.33,
						DaysInMonth: 31,
					},
				)
				require.NoError(t, err)
				assert.LessOrEqual(t, s.PotentialMonthlySavings, s.MonthlyOTACommission)
			}
		}
	}
}
