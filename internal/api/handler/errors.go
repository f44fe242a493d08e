package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/hotel"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/pricing"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/recommending"
	"github.com/vfg2006/revenue-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-optimizer-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeServiceError traduz os erros dos serviços para os códigos da API e registra o erro com o ID de correlação
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	code, text, details := classifyError(err, message)

	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"code":   code,
	}).WithError(err)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(message)
	} else {
		logger.Warn(message)
	}

	apiErrors.WriteError(w, code, text, details)
}

func classifyError(err error, message string) (code string, text string, details any) {
	var hotelErr *hotel.HotelError
	if errors.As(err, &hotelErr) {
		if hotelErr.HotelID != "" {
			details = map[string]any{"hotel_id": hotelErr.HotelID}
		}
		return hotelErr.Code, hotelErr.Error(), details
	}

	var pqErr *pq.Error
	switch {
	case errors.Is(err, pricing.ErrInvalidConfig):
		return apiErrors.ErrInvalidHotelConfig, err.Error(), nil
	case errors.Is(err, pricing.ErrInvalidRank):
		return apiErrors.ErrInvalidRank, err.Error(), nil
	case errors.Is(err, pricing.ErrInsufficientData):
		return apiErrors.ErrInsufficientData, err.Error(), nil
	case errors.Is(err, pricing.ErrSourceUnavailable):
		return apiErrors.ErrExternalService, err.Error(), nil
	case errors.Is(err, recommending.ErrInvalidRequest):
		return apiErrors.ErrInvalidRequest, err.Error(), nil
	case errors.Is(err, repository.ErrNotFound):
		return apiErrors.ErrNotFound, err.Error(), nil
	case errors.As(err, &pqErr):
		return apiErrors.ErrDatabaseOperation, message, map[string]any{"pg_code": string(pqErr.Code)}
	case errors.Is(err, context.DeadlineExceeded):
		return apiErrors.ErrCommunication, message, nil
	default:
		return apiErrors.ErrInternalServer, message, nil
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}
	return true
}
