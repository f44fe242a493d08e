package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

const healthcheckTimeout = 2 * time.Second

// Pinger é uma dependência verificada pelo healthcheck (banco, cache)
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthStatus struct {
	Status string            `json:"status"`
	Time   string            `json:"time"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthcheckHandler responde 200 quando todas as dependências respondem, senão 503 com o detalhe de cada uma
func HealthcheckHandler(checks map[string]Pinger) http.Handler {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		response := healthStatus{
			Status: "ok",
			Time:   time.Now().UTC().Format(time.RFC3339),
		}
		status := http.StatusOK

		if len(names) > 0 {
			response.Checks = make(map[string]string, len(names))
		}
		for _, name := range names {
			if err := checks[name].Ping(ctx); err != nil {
				logrus.WithError(err).WithField("dependency", name).Warn("Healthcheck falhou")
				response.Checks[name] = err.Error()
				response.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			response.Checks[name] = "ok"
		}

		writeJSON(w, status, response)
	})
}
