package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngine_Score(t *testing.T) {
	tests := []struct {
		name     string
		policy   Policy
		input    ConfidenceInput
		expected int
	}{
		{
			name:     "Live - dados fartos atingem o teto",
			policy:   LivePolicy(),
			input:    ConfidenceInput{CompetitorCount: 10, EventCount: 4, PriceStdDev: 20, LeadDays: 14},
			expected: 95,
		},
		{
			name:     "Live - cinco concorrentes estáveis e um evento",
			policy:   LivePolicy(),
			input:    ConfidenceInput{CompetitorCount: 5, EventCount: 1, PriceStdDev: 30, LeadDays: 45},
			expected: 80, // 60 + 10 + 5 + 5
		},
		{
			name:     "Live - dispersão alta não ganha bônus de estabilidade",
			policy:   LivePolicy(),
			input:    ConfidenceInput{CompetitorCount: 3, EventCount: 0, PriceStdDev: 80, LeadDays: 45},
			expected: 65,
		},
		{
			name:     "Live - fontes falhando e antecedência longa caem no piso",
			policy:   LivePolicy(),
			input:    ConfidenceInput{LeadDays: 200, FailedSources: 5},
			expected: 50,
		},
		{
			name:     "Demo - sem dados fica na base",
			policy:   DemoPolicy(),
			input:    ConfidenceInput{LeadDays: 40},
			expected: 70,
		},
		{
			name:     "Demo - três concorrentes, evento e janela ideal",
			policy:   DemoPolicy(),
			input:    ConfidenceInput{CompetitorCount: 3, EventCount: 1, LeadDays: 10},
			expected: 95,
		},
		{
			name:     "Demo - duas fontes falhando respeitam o piso 65",
			policy:   DemoPolicy(),
			input:    ConfidenceInput{LeadDays: 120, FailedSources: 2},
			expected: 65,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewEngine(tt.policy).Score(tt.input))
		})
	}
}

func TestEngine_Score_AlwaysWithinFloorAndCap(t *testing.T) {
	for _, policy := range []Policy{LivePolicy(), DemoPolicy()} {
		e := NewEngine(policy)
		for _, competitors := range []int{0, 1, 3, 8, 1000} {
			for _, events := range []int{0, 1, 50} {
				for _, lead := range []int{0, 7, 30, 91, 10000} {
					for _, failed := range []int{0, 1, 100} {
						score := e.Score(ConfidenceInput{
							CompetitorCount: competitors,
							EventCount:      events,
							PriceStdDev:     float64(competitors),
							LeadDays:        lead,
							FailedSources:   failed,
						})
						assert.GreaterOrEqual(t, score, policy.Confidence.Floor)
						assert.LessOrEqual(t, score, policy.Confidence.Cap)
					}
				}
			}
		}
	}
}
