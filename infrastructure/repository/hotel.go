package repository

//go:generate mockgen -source=hotel.go -destination=mocks/hotel.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

const (
	hotelsTable  = "hotel_configs h"
	hotelColumns = "h.id, h.name, h.city, h.country, h.region, h.total_rooms, h.base_occupancy, " +
		"h.min_price, h.max_price, h.star_rating, h.auto_mode, h.is_active, h.created_at, h.updated_at"
)

type HotelRepository interface {
	Create(ctx context.Context, hotel *domain.HotelConfig) error
	GetByID(ctx context.Context, id string) (*domain.HotelConfig, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.HotelConfig, error)
	ListAutoMode(ctx context.Context) ([]*domain.HotelConfig, error)
	Update(ctx context.Context, hotel *domain.HotelConfig) error
	SetAutoMode(ctx context.Context, id string, enabled bool) error
	Delete(ctx context.Context, id string) error
}

type hotelRepository struct {
	conn *postgres.Connection
}

func NewHotelRepository(conn *postgres.Connection) HotelRepository {
	return &hotelRepository{
		conn: conn,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *hotelRepository) Create(ctx context.Context, hotel *domain.HotelConfig) error {
	query, args, err := squirrel.
		Insert("hotel_configs").
		Columns("id", "name", "city", "country", "region", "total_rooms", "base_occupancy",
			"min_price", "max_price", "star_rating", "auto_mode", "is_active").
		Values(hotel.ID, hotel.Name, hotel.Location.City, hotel.Location.Country, hotel.Location.Region,
			hotel.TotalRooms, hotel.BaseOccupancy, hotel.MinPrice, hotel.MaxPrice, hotel.StarRating,
			hotel.AutoMode, hotel.Active).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&hotel.CreatedAt, &hotel.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir hotel: %w", err)
	}

	return nil
}

func (r *hotelRepository) GetByID(ctx context.Context, id string) (*domain.HotelConfig, error) {
	query, args, err := squirrel.
		Select(hotelColumns).
		From(hotelsTable).
		Where(squirrel.Eq{"h.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	hotel, err := scanHotel(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear hotel: %w", err)
	}

	return hotel, nil
}

func (r *hotelRepository) List(ctx context.Context, onlyActive bool) ([]*domain.HotelConfig, error) {
	builder := squirrel.
		Select(hotelColumns).
		From(hotelsTable).
		OrderBy("h.name ASC")

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"h.is_active": true})
	}

	return r.list(ctx, builder)
}

func (r *hotelRepository) ListAutoMode(ctx context.Context) ([]*domain.HotelConfig, error) {
	builder := squirrel.
		Select(hotelColumns).
		From(hotelsTable).
		Where(squirrel.Eq{"h.auto_mode": true, "h.is_active": true}).
		OrderBy("h.id ASC")

	return r.list(ctx, builder)
}

func (r *hotelRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.HotelConfig, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	hotels := make([]*domain.HotelConfig, 0)
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear hotel: %w", err)
		}
		hotels = append(hotels, hotel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return hotels, nil
}

func (r *hotelRepository) Update(ctx context.Context, hotel *domain.HotelConfig) error {
	query, args, err := squirrel.
		Update("hotel_configs").
		Set("name", hotel.Name).
		Set("city", hotel.Location.City).
		Set("country", hotel.Location.Country).
		Set("region", hotel.Location.Region).
		Set("total_rooms", hotel.TotalRooms).
		Set("base_occupancy", hotel.BaseOccupancy).
		Set("min_price", hotel.MinPrice).
		Set("max_price", hotel.MaxPrice).
		Set("star_rating", hotel.StarRating).
		Set("is_active", hotel.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": hotel.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execAffectingOne(ctx, query, args...)
}

func (r *hotelRepository) SetAutoMode(ctx context.Context, id string, enabled bool) error {
	query, args, err := squirrel.
		Update("hotel_configs").
		Set("auto_mode", enabled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execAffectingOne(ctx, query, args...)
}

// Delete remove o hotel e seus perfis de comissão na mesma transação
func (r *hotelRepository) Delete(ctx context.Context, id string) error {
	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		profilesSQL, profilesArgs, err := squirrel.
			Delete("ota_commission_profiles").
			Where(squirrel.Eq{"hotel_id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.ExecContext(ctx, profilesSQL, profilesArgs...); err != nil {
			return fmt.Errorf("erro ao remover perfis de comissão: %w", err)
		}

		hotelSQL, hotelArgs, err := squirrel.
			Delete("hotel_configs").
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		result, err := q.ExecContext(ctx, hotelSQL, hotelArgs...)
		if err != nil {
			return fmt.Errorf("erro ao remover hotel: %w", err)
		}

		return expectOneRow(result)
	})
}

func (r *hotelRepository) execAffectingOne(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return expectOneRow(result)
}

func expectOneRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanHotel(row rowScanner) (*domain.HotelConfig, error) {
	hotel := &domain.HotelConfig{}

	err := row.Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Location.City,
		&hotel.Location.Country,
		&hotel.Location.Region,
		&hotel.TotalRooms,
		&hotel.BaseOccupancy,
		&hotel.MinPrice,
		&hotel.MaxPrice,
		&hotel.StarRating,
		&hotel.AutoMode,
		&hotel.Active,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return hotel, nil
}
