package domain

// OTACommissionProfile descreve a comissão e a fatia de reservas de um canal para um hotel
type OTACommissionProfile struct {
	HotelID        string  `json:"hotel_id"`
	Channel        string  `json:"channel"`
	CommissionRate float64 `json:"commission_rate"`
	BookingShare   float64 `json:"booking_share"`
}

type DirectBookingSavings struct {
	HotelID                 string  `json:"hotel_id,omitempty"`
	AverageRate             float64 `json:"average_rate"`
	DaysInMonth             int     `json:"days_in_month"`
	MonthlyRevenue          float64 `json:"monthly_revenue"`
	TotalOTABookingShare    float64 `json:"total_ota_booking_share"`
	WeightedCommissionRate  float64 `json:"weighted_commission_rate"`
	MonthlyOTACommission    float64 `json:"monthly_ota_commission"`
	PotentialMonthlySavings float64 `json:"potential_monthly_savings"`
	ShiftableFraction       float64 `json:"shiftable_fraction"`
	UsedDefaultProfile      bool    `json:"used_default_profile"`
	ShareExceedsTotal       bool    `json:"share_exceeds_total,omitempty"`
}

type SavingsRequest struct {
	HotelID string         `json:"hotel_id,omitempty"`
	Hotel   *HotelSettings `json:"hotel_config,omitempty"`
}

type AncillaryOpportunity struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	SuggestedPrice float64 `json:"suggested_price"`
}

type AncillaryRequest struct {
	HotelID string         `json:"hotel_id,omitempty"`
	Hotel   *HotelSettings `json:"hotel_config,omitempty"`
}

type AncillaryResponse struct {
	HotelID       string                 `json:"hotel_id,omitempty"`
	Opportunities []AncillaryOpportunity `json:"opportunities"`
}

type ReplaceOTAProfilesRequest struct {
	Profiles []OTACommissionProfile `json:"profiles"`
}
