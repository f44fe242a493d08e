package narrative

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/pricing"
)

type Explainer interface {
	Explain(ctx context.Context, facts Facts) Narrative
	Ancillary(ctx context.Context, hotel domain.HotelConfig) ([]domain.AncillaryOpportunity, error)
}

type remote interface {
	Explain(ctx context.Context, facts Facts) (Narrative, error)
	Ancillary(ctx context.Context, hotel domain.HotelConfig) ([]domain.AncillaryOpportunity, error)
}

// Service usa o serviço externo quando configurado e cai para o texto local em qualquer falha
type Service struct {
	remote remote
	local  LocalExplainer
}

// New recebe nil quando não há serviço externo configurado
func New(client *Client) *Service {
	s := &Service{}
	if client != nil {
		s.remote = client
	}
	return s
}

func (s *Service) Explain(ctx context.Context, facts Facts) Narrative {
	if s.remote == nil {
		return s.local.Explain(facts)
	}

	narrative, err := s.remote.Explain(ctx, facts)
	if err != nil {
		logrus.WithError(err).WithField("location", facts.Location).
			Warn("Serviço de narrativa indisponível, usando texto local")
		return s.local.Explain(facts)
	}

	if len(narrative.MarketFactors) == 0 {
		narrative.MarketFactors = marketFactors(facts)
	}

	return narrative
}

func (s *Service) Ancillary(ctx context.Context, hotel domain.HotelConfig) ([]domain.AncillaryOpportunity, error) {
	if s.remote == nil {
		return nil, errors.Wrap(pricing.ErrSourceUnavailable, "serviço de narrativa não configurado")
	}

	opportunities, err := s.remote.Ancillary(ctx, hotel)
	if err != nil {
		return nil, errors.Wrapf(pricing.ErrSourceUnavailable, "serviço de narrativa: %v", err)
	}

	if opportunities == nil {
		opportunities = []domain.AncillaryOpportunity{}
	}

	return opportunities, nil
}
