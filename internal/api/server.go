package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-optimizer-api/internal/api/handler"
	"github.com/vfg2006/revenue-optimizer-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-optimizer-api/internal/config"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/hotel"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/recommending"
	"github.com/vfg2006/revenue-optimizer-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Dependencies reúne os serviços expostos pela API
type Dependencies struct {
	Recommendations recommending.RecommendationService
	Hotels          hotel.HotelService
	AutoRefresh     handler.CronJob
	HealthChecks    map[string]handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	if deps.Recommendations == nil || deps.Hotels == nil {
		return nil, errors.New("api: serviços de recomendação e de hotéis são obrigatórios")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.HealthChecks)...),
		router.WithRoutes(handler.Recommendations(deps.Recommendations)...),
		router.WithRoutes(handler.History(deps.Recommendations)...),
		router.WithRoutes(handler.Hotels(deps.Hotels)...),
		router.WithRoutes(handler.CronJobs(handler.CronJobServices{AutoRefreshService: deps.AutoRefresh})...),
	)
	for _, route := range rt.Routes() {
		logrus.Debugf("Rota registrada: %s", route)
	}

	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.App.AllowedOrigins),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler:           chain.Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// Handler devolve a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run atende até receber SIGINT/SIGTERM ou o contexto ser cancelado e então desliga com prazo
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("erro durante a execução do servidor: %w", err)
		}
		return nil
	case <-ctx.Done():
		logrus.Info("Sinal de término recebido")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("erro durante o desligamento do servidor: %w", err)
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
