package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-optimizer-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCors(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		method     string
		wantAllow  string
		wantStatus int
	}{
		{
			name:       "Origem configurada é liberada",
			origins:    []string{"http://localhost:5173"},
			origin:     "http://localhost:5173",
			method:     http.MethodGet,
			wantAllow:  "http://localhost:5173",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Origem desconhecida não recebe cabeçalhos",
			origins:    []string{"http://localhost:5173"},
			origin:     "https://evil.example",
			method:     http.MethodGet,
			wantAllow:  "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Curinga libera qualquer origem",
			origins:    []string{"*"},
			origin:     "https://dashboard.example",
			method:     http.MethodGet,
			wantAllow:  "https://dashboard.example",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Preflight responde sem chamar o handler",
			origins:    []string{"http://localhost:5173"},
			origin:     "http://localhost:5173",
			method:     http.MethodOptions,
			wantAllow:  "http://localhost:5173",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/recommendations", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.origins)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	t.Run("Reaproveita o ID enviado pelo cliente", func(t *testing.T) {
		var seen string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = log.GetCorrelationID(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set(CorrelationIDHeader, "req-123")
		rec := httptest.NewRecorder()

		LoggingMiddleware()(next).ServeHTTP(rec, req)

		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", rec.Header().Get(CorrelationIDHeader))
	})

	t.Run("Gera um ID quando o cliente não envia", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		rec := httptest.NewRecorder()

		LoggingMiddleware()(okHandler()).ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map")
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", nil)
	rec := httptest.NewRecorder()

	require.NotPanics(t, func() {
		LogPanicMiddleware()(panicking).ServeHTTP(rec, req)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestLoggingMiddleware_LevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel logrus.Level
	}{
		{name: "Sucesso", status: http.StatusOK, wantLevel: logrus.InfoLevel},
		{name: "Erro do cliente", status: http.StatusNotFound, wantLevel: logrus.WarnLevel},
		{name: "Erro do servidor", status: http.StatusBadGateway, wantLevel: logrus.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := test.NewGlobal()
			defer hook.Reset()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			rec := httptest.NewRecorder()

			LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/hotels", nil))

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.status, entry.Data["status_code"])
			assert.Equal(t, "/v1/hotels", entry.Data["path"])
		})
	}
}
