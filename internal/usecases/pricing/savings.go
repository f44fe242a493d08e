package pricing

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/vfg2006/revenue-optimizer-api/pkg/utils"
)

type SavingsPolicy struct {
	ShiftableFraction     float64
	DefaultCommissionRate float64
	DefaultBookingShare   float64
}

func DefaultSavingsPolicy() SavingsPolicy {
	return SavingsPolicy{
		ShiftableFraction:     0.25,
		DefaultCommissionRate: 0.18,
		DefaultBookingShare:   0.40,
	}
}

type SavingsInput struct {
	Hotel       domain.HotelConfig
	Profiles    []domain.OTACommissionProfile
	AverageRate float64
	DaysInMonth int
}

// ComputeDirectBookingSavings estima a comissão mensal paga às OTAs e quanto dela
// pode ser economizado transferindo reservas para o canal direto.
func ComputeDirectBookingSavings(p SavingsPolicy, in SavingsInput) (domain.DirectBookingSavings, error) {
	if err := ValidateHotel(in.Hotel); err != nil {
		return domain.DirectBookingSavings{}, err
	}
	if in.DaysInMonth <= 0 || in.AverageRate < 0 {
		return domain.DirectBookingSavings{}, errors.Wrap(ErrInvalidConfig, "average rate and days in month must be positive")
	}

	profiles := in.Profiles
	usedDefault := false
	if len(profiles) == 0 {
		usedDefault = true
		profiles = []domain.OTACommissionProfile{{
			HotelID:        in.Hotel.ID,
			Channel:        "default",
			CommissionRate: p.DefaultCommissionRate,
			BookingShare:   p.DefaultBookingShare,
		}}
	}

	var totalShare, weightedSum float64
	for _, prof := range profiles {
		if prof.CommissionRate < 0 || prof.CommissionRate > 1 || prof.BookingShare < 0 || prof.BookingShare > 1 {
			return domain.DirectBookingSavings{}, errors.Wrapf(ErrInvalidConfig, "channel %q has rate or share outside [0,1]", prof.Channel)
		}
		totalShare += prof.BookingShare
		weightedSum += prof.CommissionRate * prof.BookingShare
	}

	weightedRate := 0.0
	if totalShare > 0 {
		weightedRate = weightedSum / totalShare
	}

	shiftable := utils.Clamp(p.ShiftableFraction, 0, 1)

	revenue := float64(in.Hotel.TotalRooms) * in.Hotel.BaseOccupancy / 100 * in.AverageRate * float64(in.DaysInMonth)
	commission := round2(revenue * totalShare * weightedRate)
	savings := round2(commission * shiftable)

	return domain.DirectBookingSavings{
		HotelID:                 in.Hotel.ID,
		AverageRate:             round2(in.AverageRate),
		DaysInMonth:             in.DaysInMonth,
		MonthlyRevenue:          round2(revenue),
		TotalOTABookingShare:    totalShare,
		WeightedCommissionRate:  weightedRate,
		MonthlyOTACommission:    commission,
		PotentialMonthlySavings: savings,
		ShiftableFraction:       shiftable,
		UsedDefaultProfile:      usedDefault,
		ShareExceedsTotal:       totalShare > 1,
	}, nil
}
