package repository

//go:generate mockgen -source=market_snapshot.go -destination=mocks/market_snapshot.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

const (
	competitorTable   = "competitor_data c"
	competitorColumns = "c.hotel_name, c.price, c.stars, c.brand, c.distance, c.source, c.observed_at"
	eventsTable       = "market_events e"
	eventColumns      = "e.event_name, e.event_date, e.impact_level, e.description, e.event_type, e.source"
)

// MarketSnapshotRepository persiste as coletas de concorrentes e eventos por localização
type MarketSnapshotRepository interface {
	SaveCompetitors(ctx context.Context, location string, date time.Time, competitors []domain.CompetitorRate) error
	SaveEvents(ctx context.Context, location string, events []domain.MarketEvent) error
	GetSnapshot(ctx context.Context, location string, date time.Time) (*domain.MarketSnapshot, error)
	LatestCompetitors(ctx context.Context, location string) ([]domain.CompetitorRate, time.Time, error)
}

type marketSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMarketSnapshotRepository(conn *postgres.Connection) MarketSnapshotRepository {
	return &marketSnapshotRepository{
		conn: conn,
	}
}

// SaveCompetitors troca a coleta do dia pela nova lista
func (r *marketSnapshotRepository) SaveCompetitors(ctx context.Context, location string, date time.Time, competitors []domain.CompetitorRate) error {
	day := date.Format("2006-01-02")

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete("competitor_data").
			Where(squirrel.Eq{"location": location, "date_collected": day}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover coleta anterior: %w", err)
		}

		if len(competitors) == 0 {
			return nil
		}

		builder := squirrel.
			Insert("competitor_data").
			Columns("location", "date_collected", "hotel_name", "price", "stars", "brand", "distance", "source", "observed_at")
		for _, c := range competitors {
			observed := c.ObservedAt
			if observed.IsZero() {
				observed = time.Now().UTC()
			}
			builder = builder.Values(location, day, c.Name, c.Price, c.StarRating, c.Brand, c.Distance, c.Source, observed)
		}

		insertSQL, insertArgs, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir concorrentes: %w", err)
		}

		return nil
	})
}

func (r *marketSnapshotRepository) SaveEvents(ctx context.Context, location string, events []domain.MarketEvent) error {
	if len(events) == 0 {
		return nil
	}

	builder := squirrel.
		Insert("market_events").
		Columns("location", "event_name", "event_date", "impact_level", "description", "event_type", "source")
	for _, e := range events {
		builder = builder.Values(location, e.Name, e.Date.Format("2006-01-02"), string(e.Impact), e.Description, e.Type, e.Source)
	}

	query, args, err := builder.
		Suffix(`ON CONFLICT (location, event_name, event_date) DO UPDATE SET
			impact_level = EXCLUDED.impact_level,
			description = EXCLUDED.description,
			event_type = EXCLUDED.event_type,
			source = EXCLUDED.source`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar eventos: %w", err)
	}

	return nil
}

// GetSnapshot retorna nil quando não há nenhuma coleta para a localização na data
func (r *marketSnapshotRepository) GetSnapshot(ctx context.Context, location string, date time.Time) (*domain.MarketSnapshot, error) {
	day := date.Format("2006-01-02")

	competitors, err := r.queryCompetitors(ctx, squirrel.
		Select(competitorColumns).
		From(competitorTable).
		Where(squirrel.Eq{"c.location": location, "c.date_collected": day}).
		OrderBy("c.price DESC"))
	if err != nil {
		return nil, err
	}

	events, err := r.queryEvents(ctx, location, day)
	if err != nil {
		return nil, err
	}

	if len(competitors) == 0 && len(events) == 0 {
		return nil, nil
	}

	for i := range competitors {
		competitors[i].Location = location
	}

	return &domain.MarketSnapshot{
		Location:    location,
		Date:        date,
		Competitors: competitors,
		Events:      events,
	}, nil
}

// LatestCompetitors retorna a coleta mais recente da localização e a data em que foi feita
func (r *marketSnapshotRepository) LatestCompetitors(ctx context.Context, location string) ([]domain.CompetitorRate, time.Time, error) {
	latestSQL, latestArgs, err := squirrel.
		Select("MAX(c.date_collected)").
		From(competitorTable).
		Where(squirrel.Eq{"c.location": location}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latest *time.Time
	if err := r.conn.QueryRowContext(ctx, latestSQL, latestArgs...).Scan(&latest); err != nil {
		return nil, time.Time{}, fmt.Errorf("erro ao buscar última coleta: %w", err)
	}

	if latest == nil {
		return []domain.CompetitorRate{}, time.Time{}, nil
	}

	competitors, err := r.queryCompetitors(ctx, squirrel.
		Select(competitorColumns).
		From(competitorTable).
		Where(squirrel.Eq{"c.location": location, "c.date_collected": latest.Format("2006-01-02")}).
		OrderBy("c.price DESC"))
	if err != nil {
		return nil, time.Time{}, err
	}

	for i := range competitors {
		competitors[i].Location = location
	}

	return competitors, *latest, nil
}

func (r *marketSnapshotRepository) queryCompetitors(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.CompetitorRate, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	competitors := make([]domain.CompetitorRate, 0)
	for rows.Next() {
		var c domain.CompetitorRate
		if err := rows.Scan(&c.Name, &c.Price, &c.StarRating, &c.Brand, &c.Distance, &c.Source, &c.ObservedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear concorrente: %w", err)
		}
		competitors = append(competitors, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return competitors, nil
}

func (r *marketSnapshotRepository) queryEvents(ctx context.Context, location, day string) ([]domain.MarketEvent, error) {
	query, args, err := squirrel.
		Select(eventColumns).
		From(eventsTable).
		Where(squirrel.Eq{"e.location": location, "e.event_date": day}).
		OrderBy("e.event_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	events := make([]domain.MarketEvent, 0)
	for rows.Next() {
		var (
			e      domain.MarketEvent
			impact string
		)
		if err := rows.Scan(&e.Name, &e.Date, &impact, &e.Description, &e.Type, &e.Source); err != nil {
			return nil, fmt.Errorf("erro ao escanear evento: %w", err)
		}
		e.Impact = domain.Impact(impact)
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}
