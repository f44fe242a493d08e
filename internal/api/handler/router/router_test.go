package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-optimizer-api/pkg/apiErrors"
)

func okRoute(method, path string) Route {
	return Route{
		Method: method,
		Path:   path,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	}
}

func TestRouter_ErrorResponses(t *testing.T) {
	rt := New(WithRoutes(okRoute(http.MethodGet, "/v1/hotels")))

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantCode   string
	}{
		{name: "Rota existente", method: http.MethodGet, target: "/v1/hotels", wantStatus: http.StatusOK},
		{name: "Rota inexistente", method: http.MethodGet, target: "/v1/unknown", wantStatus: http.StatusNotFound, wantCode: apiErrors.ErrNotFound},
		{name: "Método não suportado", method: http.MethodDelete, target: "/v1/hotels", wantStatus: http.StatusMethodNotAllowed, wantCode: apiErrors.ErrMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode == "" {
				return
			}

			var apiErr apiErrors.APIError
			require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestRouter_RouteMiddlewaresOrder(t *testing.T) {
	var calls []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	route := okRoute(http.MethodGet, "/v1/policies")
	route.Middlewares = []func(http.Handler) http.Handler{tag("primeiro"), tag("segundo")}
	rt := New(WithRoutes(route))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/policies", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"primeiro", "segundo"}, calls)
}

func TestRouter_Routes(t *testing.T) {
	rt := New(
		WithRoutes(okRoute(http.MethodPost, "/v1/recommendations")),
		WithRoutes(okRoute(http.MethodGet, "/healthcheck"), okRoute(http.MethodGet, "/v1/hotels")),
	)

	assert.Equal(t, []string{"GET /healthcheck", "GET /v1/hotels", "POST /v1/recommendations"}, rt.Routes())
}

func TestRouter_DuplicateRoutePanics(t *testing.T) {
	assert.PanicsWithValue(t, "router: rota duplicada GET /v1/hotels", func() {
		New(WithRoutes(okRoute(http.MethodGet, "/v1/hotels"), okRoute(http.MethodGet, "/v1/hotels")))
	})
}

func TestRouter_NotFoundDetails(t *testing.T) {
	rt := New()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nothing", nil))

	assert.True(t, strings.Contains(rec.Body.String(), `"path":"/v1/nothing"`))
}
