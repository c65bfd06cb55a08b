package main

import (
	"context"
	"log/slog"

	"github.com/phrazzld/hbnb-api/internal/events"
	"github.com/prometheus/client_golang/prometheus"
)

// newAuditLogHandler returns a handler that writes every domain event to the
// log at info level.
func newAuditLogHandler(logger *slog.Logger) events.EventHandler {
	log := logger.With("component", "audit_log")
	return events.HandlerFunc(func(ctx context.Context, event *events.Event) error {
		log.InfoContext(ctx, "domain event",
			"event_id", event.ID,
			"event_type", event.Type,
			"payload", string(event.Payload))
		return nil
	})
}

// eventMetricsHandler counts domain events by type.
type eventMetricsHandler struct {
	serviceName string
	events      *prometheus.CounterVec
}

func newEventMetricsHandler(serviceName string, reg prometheus.Registerer) (*eventMetricsHandler, error) {
	h := &eventMetricsHandler{
		serviceName: serviceName,
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hbnb_domain_events_total",
				Help: "Total number of committed domain mutations by event type",
			},
			[]string{"service", "type"},
		),
	}
	if err := reg.Register(h.events); err != nil {
		return nil, err
	}
	return h, nil
}

// HandleEvent implements events.EventHandler.
func (h *eventMetricsHandler) HandleEvent(_ context.Context, event *events.Event) error {
	h.events.WithLabelValues(h.serviceName, event.Type).Inc()
	return nil
}
