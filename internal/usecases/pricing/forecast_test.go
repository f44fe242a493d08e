package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

func TestEngine_Forecast(t *testing.T) {
	monday := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return monday.AddDate(0, 0, offset) }

	events := []domain.MarketEvent{
		{Name: "Poetry Reading", Date: day(0), Impact: domain.ImpactLow},
		{Name: "Stadium Concert", Date: day(1), Impact: domain.ImpactPeak},
		{Name: "Trade Fair", Date: day(1), Impact: domain.ImpactMedium},
		{Name: "Medical Congress", Date: day(2), Impact: domain.ImpactHigh},
		{Name: "Hockey Final", Date: day(2), Impact: domain.ImpactHigh},
		{Name: "Startup Summit", Date: day(3), Impact: domain.ImpactHigh},
	}

	days, err := NewEngine(LivePolicy()).Forecast(ForecastInput{
		Hotel:       threeStarHotel(),
		Start:       monday,
		HorizonDays: 7,
		Events:      events,
		Competitors: competitors(100, 150, 200),
	})
	require.NoError(t, err)
	require.Len(t, days, 7)

	expected := []struct {
		level  domain.DemandLevel
		driver string
	}{
		{domain.DemandLow, "Standard demand"},
		{domain.DemandPeak, "Stadium Concert"},
		{domain.DemandHigh, "Hockey Final"},
		{domain.DemandMedium, "Startup Summit"},
		{domain.DemandMedium, "Weekend travel"},
		{domain.DemandMedium, "Weekend travel"},
		{domain.DemandLow, "Standard demand"},
	}

	for i, exp := range expected {
		assert.Equal(t, day(i), days[i].Date)
		assert.Equal(t, exp.level, days[i].DemandLevel, "dia %d", i)
		assert.Equal(t, exp.driver, days[i].Driver, "dia %d", i)
		assert.Greater(t, days[i].IndicativePrice, 0.0)
	}

	assert.Equal(t, 2, days[1].EventCount)
	assert.Greater(t, days[1].IndicativePrice, days[0].IndicativePrice)
}

func TestEngine_Forecast_NoEventsStillEmitsEveryDay(t *testing.T) {
	days, err := NewEngine(DemoPolicy()).Forecast(ForecastInput{
		Hotel:       threeStarHotel(),
		Start:       time.Date(2025, 5, 12, 15, 30, 0, 0, time.UTC),
		HorizonDays: 30,
	})
	require.NoError(t, err)
	require.Len(t, days, 30)

	for _, d := range days {
		assert.NotEmpty(t, d.Driver)
		assert.NotEmpty(t, d.DemandLevel)
	}
}

func TestEngine_Forecast_UsesCalendarHolidays(t *testing.T) {
	days, err := NewEngine(LivePolicy()).Forecast(ForecastInput{
		Hotel:       threeStarHotel(),
		Start:       time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC),
		HorizonDays: 1,
	})
	require.NoError(t, err)
	require.Len(t, days, 1)

	assert.Equal(t, "Christmas Eve", days[0].Driver)
	assert.Equal(t, domain.DemandMedium, days[0].DemandLevel)
	assert.Equal(t, 1, days[0].EventCount)
}

func TestEngine_Forecast_InvalidHorizon(t *testing.T) {
	e := NewEngine(LivePolicy())
	for _, horizon := range []int{0, -3, 91} {
		_, err := e.Forecast(ForecastInput{Hotel: threeStarHotel(), Start: wednesdayMay, HorizonDays: horizon})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	}
}

func TestClassifyDemand(t *testing.T) {
	high := domain.MarketEvent{Impact: domain.ImpactHigh}
	medium := domain.MarketEvent{Impact: domain.ImpactMedium}
	low := domain.MarketEvent{Impact: domain.ImpactLow}
	peak := domain.MarketEvent{Impact: domain.ImpactPeak}

	assert.Equal(t, domain.DemandPeak, ClassifyDemand([]domain.MarketEvent{low, peak}, false))
	assert.Equal(t, domain.DemandHigh, ClassifyDemand([]domain.MarketEvent{high, high}, false))
	assert.Equal(t, domain.DemandMedium, ClassifyDemand([]domain.MarketEvent{high}, false))
	assert.Equal(t, domain.DemandMedium, ClassifyDemand([]domain.MarketEvent{medium, low}, false))
	assert.Equal(t, domain.DemandMedium, ClassifyDemand(nil, true))
	assert.Equal(t, domain.DemandLow, ClassifyDemand([]domain.MarketEvent{low}, false))
}
