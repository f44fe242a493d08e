package pricing

type ConfidenceInput struct {
	CompetitorCount int
	EventCount      int
	PriceStdDev     float64
	LeadDays        int
	FailedSources   int
}

// Score soma os bônus por faixa e limita o resultado ao piso/teto da política
func (e *Engine) Score(in ConfidenceInput) int {
	cp := e.policy.Confidence

	score := cp.Base
	score += bandBonus(cp.CompetitorBands, in.CompetitorCount)
	score += bandBonus(cp.EventBands, in.EventCount)

	if cp.StabilityBonus > 0 &&
		in.CompetitorCount >= cp.StabilityMinCompetitors &&
		in.PriceStdDev < cp.StabilityMaxStdDev {
		score += cp.StabilityBonus
	}

	switch {
	case in.LeadDays >= cp.SweetSpotMinDays && in.LeadDays <= cp.SweetSpotMaxDays:
		score += cp.SweetSpotBonus
	case cp.LongLeadDays > 0 && in.LeadDays > cp.LongLeadDays:
		score -= cp.LongLeadPenalty
	}

	score -= cp.FailedSourcePenalty * in.FailedSources

	if score < cp.Floor {
		return cp.Floor
	}
	if score > cp.Cap {
		return cp.Cap
	}
	return score
}

func bandBonus(bands []Band, value int) int {
	for _, b := range bands {
		if value >= b.Min {
			return b.Bonus
		}
	}
	return 0
}
