package router

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-optimizer-api/pkg/apiErrors"
)

// Route descreve um endpoint e os middlewares aplicados só a ele
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

// ConfigRouter é uma opção aplicada na criação do Router
type ConfigRouter func(router *Router)

// WithRoutes registra um grupo de rotas
func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// Router embrulha o httprouter com respostas de erro no formato padrão da API
type Router struct {
	router     *httprouter.Router
	registered map[string]bool
}

func New(configs ...ConfigRouter) *Router {
	hr := httprouter.New()
	hr.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
	hr.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não suportado", map[string]string{
			"method": r.Method,
			"allow":  w.Header().Get("Allow"),
		})
	})
	// Pré-flight fica a cargo do middleware de CORS
	hr.HandleOPTIONS = false

	router := &Router{
		router:     hr,
		registered: make(map[string]bool),
	}

	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas; a mesma combinação método+caminho duas vezes é erro de programação
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		key := route.Method + " " + route.Path
		if r.registered[key] {
			panic(fmt.Sprintf("router: rota duplicada %s", key))
		}
		r.registered[key] = true

		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}

// Routes lista as rotas registradas em ordem alfabética
func (r *Router) Routes() []string {
	routes := make([]string, 0, len(r.registered))
	for key := range r.registered {
		routes = append(routes, key)
	}
	sort.Strings(routes)
	return routes
}
