package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/hotel"
	"github.com/vfg2006/revenue-optimizer-api/pkg/apiErrors"
)

func hotelIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if id == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do hotel é obrigatório", nil)
		return "", false
	}
	return id, true
}

func ListHotels(service hotel.HotelService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		onlyActive := r.URL.Query().Get("active") == "true"

		hotels, err := service.List(r.Context(), onlyActive)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar hotéis")
			return
		}

		writeJSON(w, http.StatusOK, hotels)
	})
}

func CreateHotel(service hotel.HotelService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateHotel")

		var request domain.CreateHotelRequest
		if !decodeBody(w, r, &request) {
			return
		}

		created, err := service.Create(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao cadastrar hotel")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func GetHotel(service hotel.HotelService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := hotelIDParam(w, r)
		if !ok {
			return
		}

		found, err := service.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar hotel")
			return
		}

		writeJSON(w, http.StatusOK, found)
	})
}

func UpdateHotel(service hotel.HotelService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateHotel")

		id, ok := hotelIDParam(w, r)
		if !ok {
			return
		}

		var request domain.UpdateHotelRequest
		if !decodeBody(w, r, &request) {
			return
		}

		// Garante que o ID da URL seja usado
		request.ID = id

		updated, err := service.Update(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar hotel")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func DeleteHotel(service hotel.HotelService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteHotel")

		id, ok := hotelIDParam(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover hotel")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func SetHotelAutoMode(service hotel.HotelService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetHotelAutoMode")

		id, ok := hotelIDParam(w, r)
		if !ok {
			return
		}

		var request domain.AutoModeRequest
		if !decodeBody(w, r, &request) {
			return
		}
		if request.Enabled == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo enabled é obrigatório", nil)
			return
		}

		updated, err := service.SetAutoMode(r.Context(), id, *request.Enabled)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao alterar modo automático")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func GetOTAProfiles(service hotel.HotelService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := hotelIDParam(w, r)
		if !ok {
			return
		}

		profiles, err := service.GetOTAProfiles(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar perfis de OTA")
			return
		}

		writeJSON(w, http.StatusOK, profiles)
	})
}

func ReplaceOTAProfiles(service hotel.HotelService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ReplaceOTAProfiles")

		id, ok := hotelIDParam(w, r)
		if !ok {
			return
		}

		var request domain.ReplaceOTAProfilesRequest
		if !decodeBody(w, r, &request) {
			return
		}

		profiles, err := service.ReplaceOTAProfiles(r.Context(), id, request.Profiles)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao substituir perfis de OTA")
			return
		}

		writeJSON(w, http.StatusOK, profiles)
	})
}
