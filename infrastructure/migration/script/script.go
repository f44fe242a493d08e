// Carga inicial de hotéis de demonstração e seus perfis de comissão das OTAs
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/migration"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/revenue-optimizer-api/internal/config"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/hotel"
	"github.com/vfg2006/revenue-optimizer-api/pkg/utils"
)

type seedHotel struct {
	Request  domain.CreateHotelRequest
	Profiles []domain.OTACommissionProfile
}

var seedHotels = []seedHotel{
	{
		Request: domain.CreateHotelRequest{
			HotelSettings: domain.HotelSettings{
				Name:          "Harbor Inn",
				Location:      domain.Location{City: "Boston", Country: "USA", Region: "MA"},
				TotalRooms:    utils.Ptr(120),
				BaseOccupancy: utils.Ptr(70.0),
				MinPrice:      utils.Ptr(90.0),
				MaxPrice:      utils.Ptr(450.0),
				StarRating:    utils.Ptr(3),
			},
		},
		Profiles: []domain.OTACommissionProfile{
			{Channel: "booking", CommissionRate: 0.18, BookingShare: 0.30},
			{Channel: "expedia", CommissionRate: 0.20, BookingShare: 0.15},
		},
	},
	{
		Request: domain.CreateHotelRequest{
			HotelSettings: domain.HotelSettings{
				Name:          "Lakeshore Suites",
				Location:      domain.Location{City: "Toronto", Country: "Canada", Region: "ON"},
				TotalRooms:    utils.Ptr(200),
				BaseOccupancy: utils.Ptr(68.0),
				MinPrice:      utils.Ptr(120.0),
				MaxPrice:      utils.Ptr(600.0),
				StarRating:    utils.Ptr(4),
			},
			AutoMode: true,
		},
		Profiles: []domain.OTACommissionProfile{
			{Channel: "booking", CommissionRate: 0.17, BookingShare: 0.25},
			{Channel: "expedia", CommissionRate: 0.19, BookingShare: 0.20},
			{Channel: "hotels.com", CommissionRate: 0.18, BookingShare: 0.05},
		},
	},
	{
		Request: domain.CreateHotelRequest{
			HotelSettings: domain.HotelSettings{
				Name:          "Rambla Boutique",
				Location:      domain.Location{City: "Barcelona", Country: "Spain"},
				TotalRooms:    utils.Ptr(45),
				BaseOccupancy: utils.Ptr(75.0),
				MinPrice:      utils.Ptr(110.0),
				MaxPrice:      utils.Ptr(380.0),
				StarRating:    utils.Ptr(4),
			},
		},
	},
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando carga inicial de hotéis...")
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx := context.Background()

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := migration.Apply(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("ERRO ao aplicar o schema")
	}

	// Sem agendador: hotéis em modo automático entram no job quando a API subir
	service := hotel.NewService(repository.NewHotelRepository(conn), repository.NewOTAProfileRepository(conn))

	existing, err := service.List(ctx, false)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao listar hotéis existentes")
	}
	registered := make(map[string]bool, len(existing))
	for _, h := range existing {
		registered[h.Name+"|"+h.Location.Key()] = true
	}

	startTime := time.Now()
	successCount := 0
	skippedCount := 0
	errorCount := 0

	for i, seed := range seedHotels {
		if registered[seed.Request.Name+"|"+seed.Request.Location.Key()] {
			logrus.Infof("Hotel %s já cadastrado, ignorando", seed.Request.Name)
			skippedCount++
			continue
		}

		request := seed.Request
		created, err := service.Create(ctx, &request)
		if err != nil {
			logrus.WithError(err).Errorf("ERRO ao cadastrar hotel [%d/%d] %s", i+1, len(seedHotels), seed.Request.Name)
			errorCount++
			continue
		}

		if len(seed.Profiles) > 0 {
			if _, err := service.ReplaceOTAProfiles(ctx, created.ID, seed.Profiles); err != nil {
				logrus.WithError(err).Errorf("ERRO ao gravar perfis de OTA do hotel %s", created.ID)
				errorCount++
				continue
			}
		}

		logrus.WithFields(logrus.Fields{
			"hotel_id": created.ID,
			"location": created.Location.Key(),
			"channels": len(seed.Profiles),
		}).Info("Hotel cadastrado")
		successCount++
	}

	logrus.Infof("Carga inicial concluída em %v. Sucesso: %d, Ignorados: %d, Erros: %d",
		time.Since(startTime), successCount, skippedCount, errorCount)
}
