package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-optimizer-api/internal/config"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

// Client conversa com o serviço externo de geração de texto
type Client struct {
	http *resty.Client
}

func NewClient(cfg config.Narrative) *Client {
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(1).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(jsoniter.Marshal).
		SetJSONUnmarshaler(jsoniter.Unmarshal)

	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &Client{http: client}
}

func (c *Client) Explain(ctx context.Context, facts Facts) (Narrative, error) {
	var result Narrative

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(facts).
		SetResult(&result).
		Post("/explain")
	if err != nil {
		return Narrative{}, errors.Wrap(err, "erro ao executar a requisição")
	}

	if resp.IsError() {
		return Narrative{}, fmt.Errorf("requisição falhou com status: %s", resp.Status())
	}

	if strings.TrimSpace(result.Reasoning) == "" {
		return Narrative{}, errors.New("resposta sem texto de justificativa")
	}

	return result, nil
}

type ancillaryResponse struct {
	Opportunities []domain.AncillaryOpportunity `json:"opportunities"`
}

func (c *Client) Ancillary(ctx context.Context, hotel domain.HotelConfig) ([]domain.AncillaryOpportunity, error) {
	var result ancillaryResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(hotel).
		SetResult(&result).
		Post("/ancillary")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}

	if resp.IsError() {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status())
	}

	return result.Opportunities, nil
}
