package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"siteadmin/internal/api/handlers/pagination"
	"siteadmin/internal/api/handlers/projects"
	"siteadmin/internal/api/middleware"
	"siteadmin/internal/service"
)

type RouterConfig struct {
	ProjectService *service.ProjectService
	MaxLength      int
	RateLimitRPS   float64
	RateLimitBurst int
	// RateLimiter overrides the limiter built from RateLimitRPS/Burst so the
	// caller can stop its sweep on shutdown.
	RateLimiter *middleware.RateLimiter
	// Registry receives the HTTP metrics. Nil uses the default registry.
	Registry *prometheus.Registry
}

func NewRouter(cfg RouterConfig) *mux.Router {
	projectHandlers := projects.NewProjectHandlers(cfg.ProjectService)
	paginationHandlers := pagination.NewPaginationHandlers(cfg.MaxLength)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if cfg.Registry != nil {
		registerer, gatherer = cfg.Registry, cfg.Registry
	}
	metrics := middleware.NewMetrics(registerer)
	limiter := cfg.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	router := mux.NewRouter()
	router.HandleFunc("/health", projectHandlers.HealthCheckHandler).Methods("GET")
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods("GET")
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	apiRouter := router.NewRoute().Subrouter()
	apiRouter.Use(metrics.Middleware, limiter.Middleware)
	apiRouter.HandleFunc("/pagination", paginationHandlers.WindowHandler).Methods("GET")
	apiRouter.HandleFunc("/projects", projectHandlers.ListProjectsHandler).Methods("GET")
	apiRouter.HandleFunc("/projects", projectHandlers.CreateProjectHandler).Methods("POST")
	apiRouter.HandleFunc("/projects/{id:[0-9]+}", projectHandlers.GetProjectHandler).Methods("GET")
	apiRouter.HandleFunc("/projects/{id:[0-9]+}", projectHandlers.UpdateProjectHandler).Methods("PUT")
	apiRouter.HandleFunc("/projects/{id:[0-9]+}", projectHandlers.DeleteProjectHandler).Methods("DELETE")
	return router
}
