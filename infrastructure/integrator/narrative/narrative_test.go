package narrative

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-optimizer-api/internal/config"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/pricing"
)

func sampleFacts() Facts {
	event := domain.MarketEvent{Name: "Boston Calling", Impact: domain.ImpactHigh}
	return Facts{
		Hotel:           domain.HotelConfig{Name: "Harbor Inn", MinPrice: 80, MaxPrice: 500},
		Location:        "Boston, USA",
		Date:            time.Date(2025, 5, 24, 0, 0, 0, 0, time.UTC),
		Price:           270,
		BasePrice:       200,
		BasePositioning: "market rate",
		Multipliers:     domain.Multipliers{Demand: 1.35, DayOfWeek: 1.0, Seasonal: 1.0, LeadTime: 1.0},
		DemandLevel:     domain.DemandHigh,
		PricingStrategy: "surge",
		MarketPosition:  "premium",
		PacingStatus:    "ahead",
		LeadDays:        10,
		Weekend:         true,
		Confidence:      88,
		KPIs:            domain.KPISet{ADR: 270, RevPAR: 221.4, ProjectedOccupancy: 82, RoomsSold: 82, ProjectedRevenue: 22140},
		Stats:           &domain.CompetitorStats{Count: 3, Mean: 200, Median: 200, P25: 175, P75: 225, Min: 150, Max: 250},
		Events:          []domain.MarketEvent{event},
		DominantEvent:   &event,
	}
}

func TestLocalExplainer_Reasoning(t *testing.T) {
	tests := []struct {
		name     string
		facts    func() Facts
		contains []string
		excludes []string
	}{
		{
			name:  "Eventos e concorrentes aparecem na justificativa",
			facts: sampleFacts,
			contains: []string{
				"Positioned competitively vs 3 competitors (avg: $200)",
				"High-impact events driving premium pricing",
			},
			excludes: []string{"Weekend premium applied", "confidence reduced"},
		},
		{
			name: "Sem concorrentes e com fonte fora do ar",
			facts: func() Facts {
				f := sampleFacts()
				f.Stats = nil
				f.BasePrice = 150
				f.Multipliers = domain.Multipliers{Demand: 1.0, DayOfWeek: 1.1, Seasonal: 1.2, LeadTime: 0.95}
				f.FailedSources = []string{"competitor-rates"}
				f.Clamped = true
				return f
			},
			contains: []string{
				"fallback base price of $150",
				"Weekend premium applied",
				"Peak season pricing in effect",
				"Early booking rate applied",
				"Limited to the configured range $80-$500",
				"Market data unavailable from competitor-rates, confidence reduced",
			},
		},
		{
			name: "Quinta-feira com multiplicador acima de 1 não é fim de semana",
			facts: func() Facts {
				f := sampleFacts()
				f.Date = time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC)
				f.Weekend = false
				f.Multipliers.DayOfWeek = 1.05
				return f
			},
			contains: []string{"Day-of-week premium applied"},
			excludes: []string{"Weekend premium applied"},
		},
		{
			name: "Domingo com multiplicador acima de 1 não é fim de semana",
			facts: func() Facts {
				f := sampleFacts()
				f.Date = time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC)
				f.Weekend = false
				f.Multipliers.DayOfWeek = 1.10
				return f
			},
			contains: []string{"Day-of-week premium applied"},
			excludes: []string{"Weekend premium applied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := LocalExplainer{}.Explain(tt.facts()).Reasoning
			for _, c := range tt.contains {
				assert.Contains(t, text, c)
			}
			for _, e := range tt.excludes {
				assert.NotContains(t, text, e)
			}
		})
	}
}

func TestLocalExplainer_AnalysisAndFactors(t *testing.T) {
	n := LocalExplainer{}.Explain(sampleFacts())

	assert.Contains(t, n.Analysis.DemandDrivers, "Boston Calling (high impact)")
	assert.Contains(t, n.Analysis.CompetitiveLandscape, "3 competitors priced between $150.00 and $250.00")
	assert.Contains(t, n.Analysis.PricingStrategy, "Surge strategy")
	assert.Contains(t, n.Analysis.RevenueOptimization, "RevPAR $221.40")
	assert.Equal(t, "No material risks identified.", n.Analysis.RiskFactors)
	assert.Equal(t, []string{"Boston Calling (high impact)", "Weekend demand", "3 competitors tracked", "Pacing ahead"}, n.MarketFactors)
}

func TestLocalExplainer_Deterministic(t *testing.T) {
	assert.Equal(t, LocalExplainer{}.Explain(sampleFacts()), LocalExplainer{}.Explain(sampleFacts()))
}

func TestService_Explain(t *testing.T) {
	t.Run("Usa o serviço externo quando responde", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/explain", r.URL.Path)
			assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"reasoning": "Festival weekend", "detailed_analysis": {"market_overview": "Busy"}}`))
		}))
		defer server.Close()

		svc := New(NewClient(config.Narrative{URL: server.URL, APIKey: "key", Timeout: time.Second}))
		n := svc.Explain(context.Background(), sampleFacts())

		assert.Equal(t, "Festival weekend", n.Reasoning)
		assert.Equal(t, "Busy", n.Analysis.MarketOverview)
		assert.NotEmpty(t, n.MarketFactors)
	})

	t.Run("Cai para o texto local quando o serviço falha", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		svc := New(NewClient(config.Narrative{URL: server.URL, Timeout: time.Second}))
		n := svc.Explain(context.Background(), sampleFacts())

		assert.Equal(t, LocalExplainer{}.Explain(sampleFacts()), n)
	})

	t.Run("Sem serviço configurado usa o texto local", func(t *testing.T) {
		n := New(nil).Explain(context.Background(), sampleFacts())
		assert.Contains(t, n.Reasoning, "Positioned competitively")
	})
}

func TestService_Ancillary(t *testing.T) {
	hotel := domain.HotelConfig{Name: "Harbor Inn", StarRating: 4}

	t.Run("Sem serviço configurado", func(t *testing.T) {
		_, err := New(nil).Ancillary(context.Background(), hotel)
		assert.True(t, errors.Is(err, pricing.ErrSourceUnavailable))
	})

	t.Run("Serviço responde oportunidades", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ancillary", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"opportunities": [{"name": "Late checkout", "description": "Until 3pm", "suggested_price": 35}]}`))
		}))
		defer server.Close()

		got, err := New(NewClient(config.Narrative{URL: server.URL, Timeout: time.Second})).Ancillary(context.Background(), hotel)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 35.0, got[0].SuggestedPrice)
	})

	t.Run("Falha do serviço vira fonte indisponível", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := New(NewClient(config.Narrative{URL: server.URL, Timeout: time.Second})).Ancillary(context.Background(), hotel)
		assert.True(t, errors.Is(err, pricing.ErrSourceUnavailable))
	})
}
