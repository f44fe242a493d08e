// Package migration cria as tabelas usadas pelo serviço
package migration

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/database/postgres"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS hotel_configs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		city TEXT NOT NULL,
		country TEXT NOT NULL DEFAULT '',
		region TEXT NOT NULL DEFAULT '',
		total_rooms INTEGER NOT NULL CHECK (total_rooms > 0),
		base_occupancy NUMERIC(5,2) NOT NULL,
		min_price NUMERIC(10,2) NOT NULL,
		max_price NUMERIC(10,2) NOT NULL,
		star_rating SMALLINT NOT NULL DEFAULT 3,
		auto_mode BOOLEAN NOT NULL DEFAULT FALSE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS price_history (
		hotel_id TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL,
		target_date DATE NOT NULL,
		recommended_price NUMERIC(10,2) NOT NULL,
		occupancy NUMERIC(5,1) NOT NULL,
		revpar NUMERIC(12,4) NOT NULL,
		adr NUMERIC(10,2) NOT NULL,
		revenue NUMERIC(14,2) NOT NULL,
		confidence SMALLINT NOT NULL,
		reasoning TEXT NOT NULL DEFAULT '',
		origin TEXT NOT NULL,
		origin_rank SMALLINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (hotel_id, location, target_date)
	)`,
	`CREATE TABLE IF NOT EXISTS ota_commission_profiles (
		hotel_id TEXT NOT NULL,
		channel TEXT NOT NULL,
		commission_rate NUMERIC(5,4) NOT NULL,
		booking_share NUMERIC(5,4) NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (hotel_id, channel)
	)`,
	`CREATE TABLE IF NOT EXISTS competitor_data (
		id BIGSERIAL PRIMARY KEY,
		location TEXT NOT NULL,
		date_collected DATE NOT NULL,
		hotel_name TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		stars SMALLINT NOT NULL DEFAULT 3,
		brand TEXT NOT NULL DEFAULT '',
		distance TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT '',
		observed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_competitor_data_location_date ON competitor_data (location, date_collected)`,
	`CREATE TABLE IF NOT EXISTS market_events (
		location TEXT NOT NULL,
		event_name TEXT NOT NULL,
		event_date DATE NOT NULL,
		impact_level TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		event_type TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (location, event_name, event_date)
	)`,
}

// Apply executa o DDL de forma idempotente
func Apply(ctx context.Context, q postgres.Queryer) error {
	for i, stmt := range statements {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao aplicar migração %d: %w", i+1, err)
		}
	}

	logrus.WithField("statements", len(statements)).Info("Migrações aplicadas com sucesso")
	return nil
}
