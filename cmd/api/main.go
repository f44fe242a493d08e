package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/cache"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/integrator/market"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/integrator/narrative"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/migration"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/revenue-optimizer-api/internal/api"
	"github.com/vfg2006/revenue-optimizer-api/internal/api/handler"
	"github.com/vfg2006/revenue-optimizer-api/internal/config"
	"github.com/vfg2006/revenue-optimizer-api/internal/scheduler"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/hotel"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/ledger"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/pricing"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/recommending"
	"github.com/vfg2006/revenue-optimizer-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.Infof("Nível de log configurado para: %s", log.Configure(cfg.App.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.Migrate {
		if err := migration.Apply(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar o schema do banco de dados")
		}
	}

	hotelRepo := repository.NewHotelRepository(pgConn)
	otaProfileRepo := repository.NewOTAProfileRepository(pgConn)
	priceHistoryRepo := repository.NewPriceHistoryRepository(pgConn)
	marketSnapshotRepo := repository.NewMarketSnapshotRepository(pgConn)

	store := kvStore(ctx, cfg.Redis)
	snapshotCache := cache.NewSnapshotCache(store, cfg.Redis.SnapshotTTL)

	aggregator := market.NewAggregator(
		competitorSource(cfg.MarketData),
		eventSource(cfg.MarketData),
		snapshotCache,
		marketSnapshotRepo,
		cfg.MarketData.Timeout,
	)

	var narrativeClient *narrative.Client
	if cfg.Narrative.URL != "" {
		narrativeClient = narrative.NewClient(cfg.Narrative)
	} else {
		logrus.Info("Serviço de narrativa não configurado, usando textos locais")
	}
	explainer := narrative.New(narrativeClient)

	policy, err := pricing.PolicyByName(cfg.Pricing.Policy, cfg.Pricing.FallbackBasePrice)
	if err != nil {
		logrus.WithError(err).Fatal("Política de preços inválida")
	}
	engine := pricing.NewEngine(policy)
	logrus.WithField("policy", policy.Name).Info("Motor de preços inicializado")

	savingsPolicy := pricing.SavingsPolicy{
		ShiftableFraction:     cfg.Savings.ShiftableFraction,
		DefaultCommissionRate: cfg.Savings.DefaultCommissionRate,
		DefaultBookingShare:   cfg.Savings.DefaultBookingShare,
	}

	historyService := ledger.NewService(priceHistoryRepo, aggregator, engine, cfg.History)

	hotelService := hotel.NewService(hotelRepo, otaProfileRepo)

	recommendationService := recommending.NewService(
		hotelService,
		aggregator,
		marketSnapshotRepo,
		otaProfileRepo,
		explainer,
		historyService,
		engine,
		savingsPolicy,
		cfg.History,
	)

	autoRefreshService := scheduler.NewAutoRefreshService(hotelRepo, recommendationService, cfg)
	hotelService.SetScheduler(autoRefreshService)

	// Inicia o agendador em background
	if err := autoRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização automática")
	} else {
		logrus.Info("Agendador de atualização automática iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Recommendations: recommendationService,
		Hotels:          hotelService,
		AutoRefresh:     autoRefreshService,
		HealthChecks: map[string]handler.Pinger{
			"postgres": pgConn,
			"cache":    store,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// kvStore usa o Redis quando habilitado e acessível; caso contrário, o cache fica em memória
func kvStore(ctx context.Context, cfg config.Redis) cache.KVStore {
	if !cfg.Enabled {
		logrus.Info("Redis desabilitado, cache de mercado em memória")
		return cache.NewMemoryKVStore()
	}

	store := cache.NewRedisKVStore(cache.NewRedisClient(cfg))
	if err := store.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Redis indisponível, cache de mercado em memória")
		return cache.NewMemoryKVStore()
	}

	logrus.WithField("addr", cfg.Addr).Info("Conexão com Redis estabelecida com sucesso")
	return store
}

func competitorSource(cfg config.MarketData) market.CompetitorSource {
	if cfg.CompetitorURL == "" {
		logrus.Warn("Fonte de tarifas de concorrentes não configurada")
		return nil
	}
	return market.NewRatesClient(cfg)
}

func eventSource(cfg config.MarketData) market.EventSource {
	if cfg.EventURL == "" {
		logrus.Warn("Fonte de eventos de mercado não configurada")
		return nil
	}
	return market.NewEventsClient(cfg)
}

// chdirToSource muda para o diretório do main para que o .env local seja encontrado
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Warn("Não foi possível mudar para o diretório da aplicação")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
