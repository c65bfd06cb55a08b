package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/hbnb-api/internal/api"
	apiMiddleware "github.com/phrazzld/hbnb-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	if app.httpMetrics != nil {
		r.Use(app.httpMetrics.Middleware)
	}

	userHandler := api.NewUserHandler(app.facade, app.logger)
	amenityHandler := api.NewAmenityHandler(app.facade, app.logger)
	placeHandler := api.NewPlaceHandler(app.facade, app.logger)
	reviewHandler := api.NewReviewHandler(app.facade, app.logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.Post("/", userHandler.CreateUser)
			r.Get("/{id}", userHandler.GetUser)
			r.Put("/{id}", userHandler.UpdateUser)
			r.Delete("/{id}", userHandler.DeleteUser)
		})

		r.Route("/amenities", func(r chi.Router) {
			r.Get("/", amenityHandler.ListAmenities)
			r.Post("/", amenityHandler.CreateAmenity)
			r.Get("/{id}", amenityHandler.GetAmenity)
			r.Put("/{id}", amenityHandler.UpdateAmenity)
			r.Delete("/{id}", amenityHandler.DeleteAmenity)
		})

		r.Route("/places", func(r chi.Router) {
			r.Get("/", placeHandler.ListPlaces)
			r.Post("/", placeHandler.CreatePlace)
			r.Get("/{id}", placeHandler.GetPlace)
			r.Put("/{id}", placeHandler.UpdatePlace)
			r.Delete("/{id}", placeHandler.DeletePlace)

			// Place sub-collections
			r.Get("/{id}/reviews", placeHandler.ListReviews)
			r.Get("/{id}/amenities", placeHandler.ListAmenities)
			r.Post("/{id}/amenities/{amenity_id}", placeHandler.AddAmenity)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", reviewHandler.ListReviews)
			r.Post("/", reviewHandler.CreateReview)
			r.Get("/{id}", reviewHandler.GetReview)
			r.Put("/{id}", reviewHandler.UpdateReview)
			r.Delete("/{id}", reviewHandler.DeleteReview)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	if app.registry != nil {
		r.Method(http.MethodGet, app.config.Metrics.Path,
			promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{Registry: app.registry}))
	}

	return r
}
