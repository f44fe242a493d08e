package repository

//go:generate mockgen -source=ota_profile.go -destination=mocks/ota_profile.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

type OTAProfileRepository interface {
	ListByHotel(ctx context.Context, hotelID string) ([]domain.OTACommissionProfile, error)
	ReplaceForHotel(ctx context.Context, hotelID string, profiles []domain.OTACommissionProfile) error
}

type otaProfileRepository struct {
	conn *postgres.Connection
}

func NewOTAProfileRepository(conn *postgres.Connection) OTAProfileRepository {
	return &otaProfileRepository{
		conn: conn,
	}
}

func (r *otaProfileRepository) ListByHotel(ctx context.Context, hotelID string) ([]domain.OTACommissionProfile, error) {
	query, args, err := squirrel.
		Select("o.hotel_id", "o.channel", "o.commission_rate", "o.booking_share").
		From("ota_commission_profiles o").
		Where(squirrel.Eq{"o.hotel_id": hotelID}).
		OrderBy("o.channel ASC").
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

	profiles := make([]domain.OTACommissionProfile, 0)
	for rows.Next() {
		var p domain.OTACommissionProfile
		if err := rows.Scan(&p.HotelID, &p.Channel, &p.CommissionRate, &p.BookingShare); err != nil {
			return nil, fmt.Errorf("erro ao escanear perfil de comissão: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return profiles, nil
}

// ReplaceForHotel substitui todos os perfis do hotel de forma atômica
func (r *otaProfileRepository) ReplaceForHotel(ctx context.Context, hotelID string, profiles []domain.OTACommissionProfile) error {
	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete("ota_commission_profiles").
			Where(squirrel.Eq{"hotel_id": hotelID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover perfis de comissão: %w", err)
		}

		if len(profiles) == 0 {
			return nil
		}

		builder := squirrel.
			Insert("ota_commission_profiles").
			Columns("hotel_id", "channel", "commission_rate", "booking_share")
		for _, p := range profiles {
			builder = builder.Values(hotelID, p.Channel, p.CommissionRate, p.BookingShare)
		}

		insertSQL, insertArgs, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir perfis de comissão: %w", err)
		}

		return nil
	})
}
