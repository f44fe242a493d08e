package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-optimizer-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/hotel"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/recommending"
)

func Healthcheck(checks map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checks),
		},
	}
}

func Recommendations(service recommending.RecommendationService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/recommendations",
			Method:  http.MethodPost,
			Handler: GetRecommendation(service),
		},
		{
			Path:    "/v1/recommendations/override",
			Method:  http.MethodPost,
			Handler: OverridePrice(service),
		},
		{
			Path:    "/v1/forecast",
			Method:  http.MethodPost,
			Handler: GetDemandForecast(service),
		},
		{
			Path:    "/v1/savings",
			Method:  http.MethodPost,
			Handler: GetDirectBookingSavings(service),
		},
		{
			Path:    "/v1/ancillary",
			Method:  http.MethodPost,
			Handler: GetAncillaryOpportunities(service),
		},
		{
			Path:    "/v1/competitors",
			Method:  http.MethodGet,
			Handler: GetCompetitors(service),
		},
		{
			Path:    "/v1/policies",
			Method:  http.MethodGet,
			Handler: ListPolicies(service),
		},
	}
}

func History(service recommending.RecommendationService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/history",
			Method:  http.MethodGet,
			Handler: GetHistoricalPerformance(service),
		},
		{
			Path:    "/v1/history/export",
			Method:  http.MethodGet,
			Handler: ExportHistory(service),
		},
	}
}

func Hotels(service hotel.HotelService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/hotels",
			Method:  http.MethodGet,
			Handler: ListHotels(service),
		},
		{
			Path:    "/v1/hotels",
			Method:  http.MethodPost,
			Handler: CreateHotel(service),
		},
		{
			Path:    "/v1/hotels/:id",
			Method:  http.MethodGet,
			Handler: GetHotel(service),
		},
		{
			Path:    "/v1/hotels/:id",
			Method:  http.MethodPut,
			Handler: UpdateHotel(service),
		},
		{
			Path:    "/v1/hotels/:id",
			Method:  http.MethodDelete,
			Handler: DeleteHotel(service),
		},
		{
			Path:    "/v1/hotels/:id/auto-mode",
			Method:  http.MethodPut,
			Handler: SetHotelAutoMode(service),
		},
		{
			Path:    "/v1/hotels/:id/ota-profiles",
			Method:  http.MethodGet,
			Handler: GetOTAProfiles(service),
		},
		{
			Path:    "/v1/hotels/:id/ota-profiles",
			Method:  http.MethodPut,
			Handler: ReplaceOTAProfiles(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
