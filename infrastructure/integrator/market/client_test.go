package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-optimizer-api/internal/config"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

func marketConfig(url string) config.MarketData {
	return config.MarketData{
		CompetitorURL: url,
		EventURL:      url,
		APIKey:        "secret",
		Timeout:       2 * time.Second,
		RateLimit:     100,
		RateBurst:     5,
	}
}

var boston = domain.Location{City: "Boston", Country: "USA"}

func TestRatesClient_FetchCompetitors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/competitors", r.URL.Path)
		assert.Equal(t, "Boston", r.URL.Query().Get("city"))
		assert.Equal(t, "2025-05-14", r.URL.Query().Get("date"))
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "Seaport Hotel", "price": 240.5, "stars": 4, "brand": "Independent", "location": "Waterfront", "distance_km": 1.25},
			{"name": "Back Bay Inn", "price": 180, "stars": 3}
		]`))
	}))
	defer server.Close()

	client := NewRatesClient(marketConfig(server.URL))
	client.now = func() time.Time { return time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC) }

	rates, err := client.FetchCompetitors(context.Background(), boston, time.Date(2025, 5, 14, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "Seaport Hotel", rates[0].Name)
	assert.Equal(t, 240.5, rates[0].Price)
	assert.Equal(t, "1.2 km", rates[0].Distance)
	assert.Equal(t, "competitor-rates", rates[0].Source)
	assert.Equal(t, "", rates[1].Distance)
	assert.Equal(t, 2025, rates[1].ObservedAt.Year())
}

func TestRatesClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := NewRatesClient(marketConfig(server.URL)).FetchCompetitors(context.Background(), boston, time.Now())

	assert.ErrorContains(t, err, "400")
}

func TestEventsClient_FetchEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"market_events": [
			{"name": "Boston Calling", "date": "2025-05-23", "impact": "HIGH", "type": "festival"},
			{"name": "Sem data", "date": "em breve", "impact": "low"}
		]}`))
	}))
	defer server.Close()

	events, err := NewEventsClient(marketConfig(server.URL)).FetchEvents(context.Background(), boston, time.Now())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.ImpactHigh, events[0].Impact)
	assert.Equal(t, time.Date(2025, 5, 23, 0, 0, 0, 0, time.UTC), events[0].Date)
	assert.Equal(t, "market-events", events[0].Source)
}

func TestRatesClient_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRatesClient(marketConfig(server.URL)).FetchCompetitors(ctx, boston, time.Now())

	assert.Error(t, err)
}
