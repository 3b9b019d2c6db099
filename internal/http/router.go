package http

import (
	"net/http"

	"site-analytics/internal/aggregators"
	"site-analytics/internal/shared/loggers"
	"site-analytics/internal/shared/metrics"
	"site-analytics/internal/sites"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(analyticsService aggregators.AnalyticsService, siteService sites.SiteService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Routes
	router.Get("/analytics", errorHandlingAdapter(NewAnalyticsHandler(analyticsService, siteService)))
	router.Get("/settings", errorHandlingAdapter(NewGetSettingsHandler(siteService)))
	router.Put("/settings", errorHandlingAdapter(NewUpdateSettingsHandler(siteService)))
	router.Delete("/settings", errorHandlingAdapter(NewResetSettingsHandler(siteService)))
	router.Post("/zones/resolve", errorHandlingAdapter(NewResolveZoneHandler(siteService)))
	router.Get("/deployments/latest", errorHandlingAdapter(NewLastDeploymentHandler(siteService)))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
