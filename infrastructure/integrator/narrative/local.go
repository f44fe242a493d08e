package narrative

import (
	"fmt"
	"strings"

	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

// LocalExplainer gera textos determinísticos a partir dos fatos, sem depender de serviço externo
type LocalExplainer struct{}

func (LocalExplainer) Explain(f Facts) Narrative {
	return Narrative{
		Reasoning:     reasoning(f),
		Analysis:      analysis(f),
		MarketFactors: marketFactors(f),
	}
}

func reasoning(f Facts) string {
	reasons := make([]string, 0, 6)

	if f.Stats != nil {
		reasons = append(reasons, fmt.Sprintf("Positioned competitively vs %d competitors (avg: $%.0f)", f.Stats.Count, f.Stats.Mean))
	} else {
		reasons = append(reasons, fmt.Sprintf("No competitor rates available, fallback base price of $%.0f used", f.BasePrice))
	}

	switch {
	case f.Multipliers.Demand > 1.2:
		reasons = append(reasons, "High-impact events driving premium pricing")
	case f.Multipliers.Demand > 1.05:
		reasons = append(reasons, "Market events supporting rate increase")
	}

	switch {
	case f.Weekend && f.Multipliers.DayOfWeek > 1:
		reasons = append(reasons, "Weekend premium applied")
	case f.Multipliers.DayOfWeek > 1:
		reasons = append(reasons, "Day-of-week premium applied")
	}

	switch {
	case f.Multipliers.Seasonal > 1.1:
		reasons = append(reasons, "Peak season pricing in effect")
	case f.Multipliers.Seasonal < 0.95:
		reasons = append(reasons, "Off-season discount applied")
	}

	switch {
	case f.Multipliers.LeadTime > 1:
		reasons = append(reasons, "Last-minute demand premium applied")
	case f.Multipliers.LeadTime < 1:
		reasons = append(reasons, "Early booking rate applied")
	}

	if f.Clamped {
		reasons = append(reasons, fmt.Sprintf("Limited to the configured range $%.0f-$%.0f", f.Hotel.MinPrice, f.Hotel.MaxPrice))
	}

	if len(f.FailedSources) > 0 {
		reasons = append(reasons, fmt.Sprintf("Market data unavailable from %s, confidence reduced", strings.Join(f.FailedSources, ", ")))
	}

	return strings.Join(reasons, "; ")
}

func analysis(f Facts) (a domain.DetailedAnalysis) {
	day := f.Date.Format("Monday, 2006-01-02")

	a.MarketOverview = fmt.Sprintf("%s on %s: %s demand with %d market event(s) on the date.",
		f.Location, day, f.DemandLevel, len(f.Events))

	if f.Stats != nil {
		a.CompetitiveLandscape = fmt.Sprintf(
			"%d competitors priced between $%.2f and $%.2f (median $%.2f, middle half $%.2f-$%.2f). Our rate sits in the %s segment.",
			f.Stats.Count, f.Stats.Min, f.Stats.Max, f.Stats.Median, f.Stats.P25, f.Stats.P75, f.MarketPosition)
	} else {
		a.CompetitiveLandscape = "No competitor rates were available for this date; the configured fallback base price was used."
	}

	switch {
	case f.DominantEvent != nil:
		a.DemandDrivers = fmt.Sprintf("%s (%s impact) is the main demand driver.", f.DominantEvent.Name, f.DominantEvent.Impact)
	case f.Weekend:
		a.DemandDrivers = "Weekend leisure travel with no significant events."
	default:
		a.DemandDrivers = "No significant events; baseline business and leisure demand."
	}

	a.PricingStrategy = fmt.Sprintf(
		"%s strategy: %s base of $%.2f adjusted by demand x%.2f, day of week x%.2f, season x%.2f and lead time x%.2f to $%.2f.",
		capitalize(f.PricingStrategy), f.BasePositioning, f.BasePrice,
		f.Multipliers.Demand, f.Multipliers.DayOfWeek, f.Multipliers.Seasonal, f.Multipliers.LeadTime, f.Price)

	a.RiskFactors = risks(f)

	a.RevenueOptimization = fmt.Sprintf(
		"Projected occupancy of %.1f%% (%d rooms) yields ADR $%.2f, RevPAR $%.2f and revenue $%.2f. Booking pace is %s.",
		f.KPIs.ProjectedOccupancy, f.KPIs.RoomsSold, f.KPIs.ADR, f.KPIs.RevPAR, f.KPIs.ProjectedRevenue, f.PacingStatus)

	return a
}

func risks(f Facts) string {
	risks := make([]string, 0, 4)

	if len(f.FailedSources) > 0 {
		risks = append(risks, fmt.Sprintf("%d market data source(s) did not respond", len(f.FailedSources)))
	}
	if f.Stats == nil || f.Stats.Count < 3 {
		risks = append(risks, "thin competitor sample")
	}
	if f.LeadDays > 90 {
		risks = append(risks, "long lead time increases forecast uncertainty")
	}
	if f.Clamped {
		risks = append(risks, "the market-driven price falls outside the configured range")
	}

	if len(risks) == 0 {
		return "No material risks identified."
	}

	return capitalize(strings.Join(risks, "; ")) + "."
}

func marketFactors(f Facts) []string {
	factors := make([]string, 0, len(f.Events)+4)

	for _, e := range f.Events {
		factors = append(factors, fmt.Sprintf("%s (%s impact)", e.Name, e.Impact))
	}

	if f.Weekend {
		factors = append(factors, "Weekend demand")
	}

	switch {
	case f.Multipliers.Seasonal > 1.1:
		factors = append(factors, "Peak season")
	case f.Multipliers.Seasonal < 0.95:
		factors = append(factors, "Off-season")
	}

	if f.Stats != nil {
		factors = append(factors, fmt.Sprintf("%d competitors tracked", f.Stats.Count))
	}

	if f.LeadDays <= 2 {
		factors = append(factors, "Last-minute booking window")
	}

	factors = append(factors, fmt.Sprintf("Pacing %s", f.PacingStatus))

	return factors
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
