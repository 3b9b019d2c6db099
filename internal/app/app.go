package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"site-analytics/internal/aggregators"
	"site-analytics/internal/cloudflare"
	internalhttp "site-analytics/internal/http"
	"site-analytics/internal/models"
	"site-analytics/internal/planners"
	"site-analytics/internal/shared/configs"
	"site-analytics/internal/shared/filestorages"
	"site-analytics/internal/shared/loggers"
	"site-analytics/internal/sites"
	"site-analytics/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "site-analytics").
		Logger()

	// Initialize settings store
	fileStorage, err := filestorages.NewFileStorage(config.SettingsStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	settingsStore := stores.NewSettingsStore(fileStorage)

	// Initialize upstream client
	client := cloudflare.NewClient(cloudflare.ClientOptions{
		GraphQLEndpoint: config.Cloudflare.GraphQLEndpoint,
		APIBaseURL:      config.Cloudflare.APIBaseURL,
		Timeout:         time.Duration(config.Cloudflare.RequestTimeout) * time.Second,
	})

	// Initialize site service
	fallback := models.Settings{
		APIToken:    config.Cloudflare.APIToken,
		ZoneID:      config.Cloudflare.ZoneID,
		Domain:      config.Cloudflare.Domain,
		AccountID:   config.Cloudflare.AccountID,
		ProjectName: config.Cloudflare.ProjectName,
	}
	siteService := sites.NewSiteService(settingsStore, client, fallback)

	// Initialize analytics service
	planner, err := planners.NewQueryPlanner(planners.PlannerOptions{
		ChunkDays:         config.Analytics.ChunkDays,
		MaxFieldsPerQuery: config.Analytics.MaxFieldsPerQuery,
		MaxWindow:         time.Duration(config.Analytics.BreakdownMaxWindowHours) * time.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize query planner: %w", err)
	}
	analyticsService := aggregators.NewAnalyticsService(
		client,
		planner,
		aggregators.NewSlotAggregator(),
		aggregators.NewBreakdownAggregator(),
		aggregators.AnalyticsServiceOptions{MaxDays: config.Analytics.MaxDays},
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(analyticsService, siteService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting site-analytics service on port %d (log_level=%s, settings_root_dir=%s, chunk_days=%d, max_days=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.SettingsStorage.RootDir,
			app.config.Analytics.ChunkDays,
			app.config.Analytics.MaxDays)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application. In-flight analytics fetches see their
// request context canceled once the shutdown deadline passes.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
