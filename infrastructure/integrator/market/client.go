package market

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-optimizer-api/internal/config"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"golang.org/x/time/rate"
)

type CompetitorSource interface {
	Name() string
	FetchCompetitors(ctx context.Context, location domain.Location, date time.Time) ([]domain.CompetitorRate, error)
}

type EventSource interface {
	Name() string
	FetchEvents(ctx context.Context, location domain.Location, date time.Time) ([]domain.MarketEvent, error)
}

// httpSource concentra o cliente resty e o limitador compartilhado por uma fonte
type httpSource struct {
	name    string
	client  *resty.Client
	limiter *rate.Limiter
}

func newHTTPSource(name, baseURL string, cfg config.MarketData) *httpSource {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(jsoniter.Marshal).
		SetJSONUnmarshaler(jsoniter.Unmarshal)

	if cfg.APIKey != "" {
		client.SetHeader("X-API-Key", cfg.APIKey)
	}

	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	return &httpSource{
		name:    name,
		client:  client,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (s *httpSource) Name() string {
	return s.name
}

func (s *httpSource) get(ctx context.Context, path string, location domain.Location, date time.Time, result interface{}) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "limite de requisições")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"city":    location.City,
			"country": location.Country,
			"date":    date.Format(time.DateOnly),
		}).
		SetResult(result).
		Get(path)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}

	if resp.IsError() {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status())
	}

	return nil
}

type competitorPayload struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stars      int     `json:"stars"`
	Brand      string  `json:"brand"`
	Location   string  `json:"location"`
	DistanceKm float64 `json:"distance_km"`
}

type RatesClient struct {
	*httpSource
	now func() time.Time
}

func NewRatesClient(cfg config.MarketData) *RatesClient {
	return &RatesClient{
		httpSource: newHTTPSource("competitor-rates", cfg.CompetitorURL, cfg),
		now:        time.Now,
	}
}

func (c *RatesClient) FetchCompetitors(ctx context.Context, location domain.Location, date time.Time) ([]domain.CompetitorRate, error) {
	var payload []competitorPayload
	if err := c.get(ctx, "/competitors", location, date, &payload); err != nil {
		return nil, err
	}

	observed := c.now().UTC()
	rates := make([]domain.CompetitorRate, 0, len(payload))
	for _, p := range payload {
		cr := domain.CompetitorRate{
			Name:       p.Name,
			Price:      p.Price,
			StarRating: p.Stars,
			Brand:      p.Brand,
			Location:   p.Location,
			Source:     c.name,
			ObservedAt: observed,
		}
		if p.DistanceKm > 0 {
			cr.Distance = fmt.Sprintf("%.1f km", p.DistanceKm)
		}
		rates = append(rates, cr)
	}

	return rates, nil
}

type eventPayload struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Impact      string `json:"impact"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type eventsResponse struct {
	MarketEvents []eventPayload `json:"market_events"`
}

type EventsClient struct {
	*httpSource
}

func NewEventsClient(cfg config.MarketData) *EventsClient {
	return &EventsClient{
		httpSource: newHTTPSource("market-events", cfg.EventURL, cfg),
	}
}

// FetchEvents descarta eventos sem data válida
func (c *EventsClient) FetchEvents(ctx context.Context, location domain.Location, date time.Time) ([]domain.MarketEvent, error) {
	var payload eventsResponse
	if err := c.get(ctx, "/events", location, date, &payload); err != nil {
		return nil, err
	}

	events := make([]domain.MarketEvent, 0, len(payload.MarketEvents))
	for _, p := range payload.MarketEvents {
		day, err := time.Parse(time.DateOnly, strings.TrimSpace(p.Date))
		if err != nil {
			continue
		}

		events = append(events, domain.MarketEvent{
			Name:        p.Name,
			Date:        day,
			Impact:      domain.Impact(strings.ToLower(strings.TrimSpace(p.Impact))),
			Source:      c.name,
			Description: p.Description,
			Type:        p.Type,
		})
	}

	return events, nil
}
