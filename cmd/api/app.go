package main

import (
	"context"
	"log/slog"

	"cool-finder/internal/centers"
	"cool-finder/internal/config"
	"cool-finder/internal/directions"
	"cool-finder/internal/heat"
	"cool-finder/internal/location"
	"cool-finder/internal/observability"
	"cool-finder/internal/registry"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router            *gin.Engine
	logger            *slog.Logger
	cfg               *config.Config
	registry          *registry.Registry
	centersService    centers.Service
	locationService   location.Service
	directionsService directions.Service
	heatService       heat.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	metrics := observability.NewMetrics()

	// The registry loads the bundled Seattle dataset unless a file is configured
	var source registry.Source = registry.SeedSource{}
	if cfg.Registry.Path != "" {
		source = registry.FileSource{Path: cfg.Registry.Path}
	}

	reg, err := registry.New(source, logger, metrics)
	if err != nil {
		return nil, err
	}
	if cfg.Registry.RefreshInterval > 0 {
		reg.StartAutoRefresh(context.Background(), cfg.Registry.RefreshInterval)
	}

	centersSvc, err := centers.NewService(reg, metrics, logger)
	if err != nil {
		return nil, err
	}

	app := &App{
		router:         router,
		logger:         logger,
		cfg:            cfg,
		registry:       reg,
		centersService: centersSvc,
		locationService: location.NewService(
			cfg.Geocode.UserAgent,
			cfg.Geocode.Timeout,
			cfg.Geocode.CacheTTL,
			metrics,
			logger,
		),
		directionsService: directions.NewService(
			cfg.Directions.BaseURL,
			cfg.Directions.Timeout,
			metrics,
			logger,
		),
		heatService: heat.NewService(
			cfg.Heat.UserAgent,
			cfg.Heat.Timeout,
			cfg.Heat.CacheTTL,
			metrics,
			logger,
		),
	}

	logger.Info("application initialized", "centers", reg.Len())

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
