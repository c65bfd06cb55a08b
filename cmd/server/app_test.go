package main

import (
	"context"
	"testing"

	"github.com/phrazzld/hbnb-api/internal/config"
	"github.com/phrazzld/hbnb-api/internal/events"
	"github.com/phrazzld/hbnb-api/internal/service"
	"github.com/phrazzld/hbnb-api/internal/testutils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   0,
			LogLevel:               "debug",
			ShutdownTimeoutSeconds: 5,
		},
		Auth:    config.AuthConfig{BcryptCost: bcrypt.MinCost},
		Reviews: config.ReviewsConfig{OnePerUserPlace: true},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics", ServiceName: "hbnb-test"},
	}
}

func newTestApplication(t *testing.T, cfg *config.Config) *application {
	t.Helper()
	app, err := newApplication(cfg, testutils.DiscardLogger())
	require.NoError(t, err)
	return app
}

func counterValue(t *testing.T, reg prometheus.Gatherer, name string, want map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metrics:
		for _, metric := range family.GetMetric() {
			labels := make(map[string]string)
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			for k, v := range want {
				if labels[k] != v {
					continue metrics
				}
			}
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}

func TestNewApplication(t *testing.T) {
	t.Run("metrics enabled", func(t *testing.T) {
		app := newTestApplication(t, testConfig())
		assert.NotNil(t, app.facade)
		assert.NotNil(t, app.registry)
		assert.NotNil(t, app.httpMetrics)
	})

	t.Run("metrics disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.Metrics.Enabled = false
		app := newTestApplication(t, cfg)
		assert.NotNil(t, app.facade)
		assert.Nil(t, app.registry)
		assert.Nil(t, app.httpMetrics)
	})

	t.Run("review policy comes from config", func(t *testing.T) {
		cfg := testConfig()
		cfg.Reviews.OnePerUserPlace = false
		app := newTestApplication(t, cfg)
		ctx := context.Background()

		user, err := app.facade.CreateUser(ctx, service.CreateUserInput{Email: "a@b.com", FirstName: "A", LastName: "B"})
		require.NoError(t, err)
		place, err := app.facade.CreatePlace(ctx, service.CreatePlaceInput{Title: "Loft", Price: 10, OwnerID: user.ID.String()})
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			_, err := app.facade.CreateReview(ctx, service.CreateReviewInput{
				Rating: 4, Comment: "ok", UserID: user.ID.String(), PlaceID: place.ID.String(),
			})
			require.NoError(t, err)
		}
	})
}

func TestEventHandlers(t *testing.T) {
	t.Run("metrics count events by type", func(t *testing.T) {
		app := newTestApplication(t, testConfig())
		ctx := context.Background()

		_, err := app.facade.CreateAmenity(ctx, "Wi-Fi", "")
		require.NoError(t, err)
		_, err = app.facade.CreateAmenity(ctx, "Pool", "")
		require.NoError(t, err)

		assert.Equal(t, 2.0, counterValue(t, app.registry, "hbnb_domain_events_total",
			map[string]string{"type": events.AmenityCreated, "service": "hbnb-test"}))
	})

	t.Run("audit log records events", func(t *testing.T) {
		logger, logs := testutils.NewTestLogger()
		handler := newAuditLogHandler(logger)

		event, err := events.NewEvent(events.UserCreated, events.EntityPayload{})
		require.NoError(t, err)
		require.NoError(t, handler.HandleEvent(context.Background(), event))

		entry, found := logs.Find("domain event")
		require.True(t, found)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "audit_log", entry["component"])
		assert.Equal(t, events.UserCreated, entry["event_type"])
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_, err := newEventMetricsHandler("svc", reg)
		require.NoError(t, err)
		_, err = newEventMetricsHandler("svc", reg)
		assert.Error(t, err)
	})
}
