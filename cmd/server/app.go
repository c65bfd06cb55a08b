package main

import (
	"context"
	"fmt"
	"log/slog"

	apiMiddleware "github.com/phrazzld/hbnb-api/internal/api/middleware"
	"github.com/phrazzld/hbnb-api/internal/config"
	"github.com/phrazzld/hbnb-api/internal/events"
	"github.com/phrazzld/hbnb-api/internal/service"
	"github.com/phrazzld/hbnb-api/internal/service/auth"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	repos  service.Repositories
	facade *service.Facade

	eventEmitter *events.InMemoryEventEmitter

	// registry is nil when metrics are disabled.
	registry    *prometheus.Registry
	httpMetrics *apiMiddleware.HTTPMetrics
}

// newApplication builds the repositories, facade, event handlers and metrics
// for cfg. All state lives in memory for the lifetime of the process.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		repos:  service.NewInMemoryRepositories(),
	}

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(newAuditLogHandler(logger))

	if cfg.Metrics.Enabled {
		app.registry = prometheus.NewRegistry()
		if err := app.registry.Register(collectors.NewGoCollector()); err != nil {
			return nil, fmt.Errorf("failed to register go collector: %w", err)
		}
		app.httpMetrics = apiMiddleware.NewHTTPMetrics(cfg.Metrics.ServiceName, app.registry)

		eventMetrics, err := newEventMetricsHandler(cfg.Metrics.ServiceName, app.registry)
		if err != nil {
			return nil, fmt.Errorf("failed to register event metrics: %w", err)
		}
		app.eventEmitter.RegisterHandler(eventMetrics)
		logger.Info("Metrics enabled", "path", cfg.Metrics.Path)
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.facade = service.NewFacade(
		app.repos,
		hasher,
		logger,
		service.WithOneReviewPerUserPlace(cfg.Reviews.OnePerUserPlace),
		service.WithEmitter(app.eventEmitter),
	)

	logger.Info("Application initialized successfully", "bcrypt_cost", hasher.Cost())
	return app, nil
}

// Run starts the HTTP server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources after the server has stopped.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed",
		"users", app.repos.Users.Len(),
		"places", app.repos.Places.Len(),
		"amenities", app.repos.Amenities.Len(),
		"reviews", app.repos.Reviews.Len())
}
