package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-optimizer-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-optimizer-api/pkg/apiErrors"
)

func serve(routes []router.Route, method, target, body string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthcheck(t *testing.T) {
	healthy := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("dial tcp: connection refused") })

	tests := []struct {
		name       string
		checks     map[string]Pinger
		wantStatus int
		want       healthStatus
	}{
		{
			name:       "Sem dependências",
			wantStatus: http.StatusOK,
			want:       healthStatus{Status: "ok"},
		},
		{
			name:       "Todas as dependências respondem",
			checks:     map[string]Pinger{"postgres": healthy, "cache": healthy},
			wantStatus: http.StatusOK,
			want:       healthStatus{Status: "ok", Checks: map[string]string{"postgres": "ok", "cache": "ok"}},
		},
		{
			name:       "Banco fora do ar",
			checks:     map[string]Pinger{"postgres": down, "cache": healthy},
			wantStatus: http.StatusServiceUnavailable,
			want: healthStatus{
				Status: "degraded",
				Checks: map[string]string{"postgres": "dial tcp: connection refused", "cache": "ok"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(Healthcheck(tt.checks), http.MethodGet, "/healthcheck", "")

			require.Equal(t, tt.wantStatus, rec.Code)

			var got healthStatus
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.NotEmpty(t, got.Time)
			got.Time = ""
			assert.Equal(t, tt.want, got)
		})
	}
}
