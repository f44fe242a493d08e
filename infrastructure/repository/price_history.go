package repository

//go:generate mockgen -source=price_history.go -destination=mocks/price_history.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

const (
	priceHistoryTable   = "price_history ph"
	priceHistoryColumns = "ph.hotel_id, ph.location, ph.target_date, ph.recommended_price, ph.occupancy, " +
		"ph.revpar, ph.adr, ph.revenue, ph.confidence, ph.reasoning, ph.origin, ph.updated_at"
)

type PriceHistoryRepository interface {
	Get(ctx context.Context, hotelID, location string, date time.Time) (*domain.HistoryEntry, error)
	// Upsert grava a entrada respeitando a precedência de origem. Retorna false quando
	// o registro existente tem origem mais forte e foi mantido.
	Upsert(ctx context.Context, entry *domain.HistoryEntry) (bool, error)
	ListRange(ctx context.Context, hotelID, location string, start, end time.Time) ([]domain.HistoryEntry, error)
	AverageADR(ctx context.Context, hotelID string, since time.Time) (float64, int, error)
}

type priceHistoryRepository struct {
	conn *postgres.Connection
}

func NewPriceHistoryRepository(conn *postgres.Connection) PriceHistoryRepository {
	return &priceHistoryRepository{
		conn: conn,
	}
}

func (r *priceHistoryRepository) Get(ctx context.Context, hotelID, location string, date time.Time) (*domain.HistoryEntry, error) {
	query, args, err := squirrel.
		Select(priceHistoryColumns).
		From(priceHistoryTable).
		Where(squirrel.Eq{
			"ph.hotel_id":    hotelID,
			"ph.location":    location,
			"ph.target_date": date.Format("2006-01-02"),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry, err := scanHistoryEntry(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
	}

	return entry, nil
}

func (r *priceHistoryRepository) Upsert(ctx context.Context, entry *domain.HistoryEntry) (bool, error) {
	query, args, err := squirrel.
		Insert("price_history").
		Columns("hotel_id", "location", "target_date", "recommended_price", "occupancy", "revpar",
			"adr", "revenue", "confidence", "reasoning", "origin", "origin_rank").
		Values(entry.HotelID, entry.Location, entry.Date.Format("2006-01-02"), entry.Price, entry.Occupancy,
			entry.RevPAR, entry.ADR, entry.Revenue, entry.Confidence, entry.Reasoning,
			string(entry.Origin), entry.Origin.Precedence()).
		Suffix(`ON CONFLICT (hotel_id, location, target_date) DO UPDATE SET
			recommended_price = EXCLUDED.recommended_price,
			occupancy = EXCLUDED.occupancy,
			revpar = EXCLUDED.revpar,
			adr = EXCLUDED.adr,
			revenue = EXCLUDED.revenue,
			confidence = EXCLUDED.confidence,
			reasoning = EXCLUDED.reasoning,
			origin = EXCLUDED.origin,
			origin_rank = EXCLUDED.origin_rank,
			updated_at = NOW()
		WHERE price_history.origin_rank <= EXCLUDED.origin_rank`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("erro ao gravar histórico: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *priceHistoryRepository) ListRange(ctx context.Context, hotelID, location string, start, end time.Time) ([]domain.HistoryEntry, error) {
	query, args, err := squirrel.
		Select(priceHistoryColumns).
		From(priceHistoryTable).
		Where(squirrel.Eq{"ph.hotel_id": hotelID, "ph.location": location}).
		Where(squirrel.GtOrEq{"ph.target_date": start.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ph.target_date": end.Format("2006-01-02")}).
		OrderBy("ph.target_date ASC").
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

	entries := make([]domain.HistoryEntry, 0)
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// AverageADR calcula a diária média do hotel a partir de uma data, em todas as localizações
func (r *priceHistoryRepository) AverageADR(ctx context.Context, hotelID string, since time.Time) (float64, int, error) {
	query, args, err := squirrel.
		Select("COALESCE(AVG(ph.adr), 0)", "COUNT(*)").
		From(priceHistoryTable).
		Where(squirrel.Eq{"ph.hotel_id": hotelID}).
		Where(squirrel.GtOrEq{"ph.target_date": since.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		avg   float64
		count int
	)
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("erro ao calcular diária média: %w", err)
	}

	return avg, count, nil
}

func scanHistoryEntry(row rowScanner) (*domain.HistoryEntry, error) {
	var (
		entry     domain.HistoryEntry
		origin    string
		reasoning sql.NullString
	)

	err := row.Scan(
		&entry.HotelID,
		&entry.Location,
		&entry.Date,
		&entry.Price,
		&entry.Occupancy,
		&entry.RevPAR,
		&entry.ADR,
		&entry.Revenue,
		&entry.Confidence,
		&reasoning,
		&origin,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Origin = domain.Origin(origin)
	entry.Reasoning = reasoning.String
	entry.Date = time.Date(entry.Date.Year(), entry.Date.Month(), entry.Date.Day(), 0, 0, 0, 0, time.UTC)

	return &entry, nil
}
