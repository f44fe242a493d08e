package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/ledger"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/recommending"
	"github.com/vfg2006/revenue-optimizer-api/pkg/apiErrors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var filenameReplacer = strings.NewReplacer(",", "_", " ", "-")

func GetRecommendation(service recommending.RecommendationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetRecommendation")

		var request domain.RecommendationRequest
		if !decodeBody(w, r, &request) {
			return
		}

		recommendation, err := service.GetRecommendation(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar recomendação")
			return
		}

		writeJSON(w, http.StatusOK, recommendation)
	})
}

func OverridePrice(service recommending.RecommendationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - OverridePrice")

		var request domain.OverrideRequest
		if !decodeBody(w, r, &request) {
			return
		}

		result, err := service.OverridePrice(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular preço manual")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func GetDemandForecast(service recommending.RecommendationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDemandForecast")

		var request domain.ForecastRequest
		if !decodeBody(w, r, &request) {
			return
		}

		forecast, err := service.GetDemandForecast(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar previsão de demanda")
			return
		}

		writeJSON(w, http.StatusOK, forecast)
	})
}

func GetDirectBookingSavings(service recommending.RecommendationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDirectBookingSavings")

		var request domain.SavingsRequest
		if !decodeBody(w, r, &request) {
			return
		}

		savings, err := service.GetDirectBookingSavings(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular economia com reservas diretas")
			return
		}

		writeJSON(w, http.StatusOK, savings)
	})
}

func GetAncillaryOpportunities(service recommending.RecommendationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAncillaryOpportunities")

		var request domain.AncillaryRequest
		if !decodeBody(w, r, &request) {
			return
		}

		response, err := service.GetAncillaryOpportunities(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar oportunidades de receita auxiliar")
			return
		}

		writeJSON(w, http.StatusOK, response)
	})
}

// parseHistoryRequest lê location, days e hotel_id da query string
func parseHistoryRequest(w http.ResponseWriter, r *http.Request) (domain.HistoryRequest, bool) {
	query := r.URL.Query()
	request := domain.HistoryRequest{
		HotelID:  query.Get("hotel_id"),
		Location: query.Get("location"),
	}

	if rawDays := query.Get("days"); rawDays != "" {
		days, err := strconv.Atoi(rawDays)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro days deve ser um número inteiro", nil)
			return request, false
		}
		request.Days = days
	}

	return request, true
}

func GetHistoricalPerformance(service recommending.RecommendationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetHistoricalPerformance")

		request, ok := parseHistoryRequest(w, r)
		if !ok {
			return
		}

		performance, err := service.GetHistoricalPerformance(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar histórico de preços")
			return
		}

		writeJSON(w, http.StatusOK, performance)
	})
}

// ExportHistory devolve a mesma janela de histórico como planilha XLSX
func ExportHistory(service recommending.RecommendationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportHistory")

		request, ok := parseHistoryRequest(w, r)
		if !ok {
			return
		}

		performance, err := service.GetHistoricalPerformance(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar histórico de preços")
			return
		}

		workbook, err := ledger.ExportWorkbook(performance)
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar planilha de histórico")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}

		filename := fmt.Sprintf("history-%s-%dd.xlsx",
			filenameReplacer.Replace(domain.ParseLocation(performance.Location).Key()), performance.Days)
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(workbook); err != nil {
			logrus.WithError(err).Warn("Erro ao enviar planilha")
		}
	})
}

func GetCompetitors(service recommending.RecommendationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCompetitors")

		location := r.URL.Query().Get("location")
		if location == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro location é obrigatório", nil)
			return
		}

		snapshot, err := service.GetCompetitors(r.Context(), location, r.URL.Query().Get("date"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar concorrentes")
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	})
}

func ListPolicies(service recommending.RecommendationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.ListPolicies())
	})
}
