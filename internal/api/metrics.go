package api

import (
	"context"
	"strconv"

	"github.com/alexanderramin/swimadmin/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTPRequestsTotal counts API requests by route pattern and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swimadmin_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	// MapSavesTotal counts level map saves by outcome.
	MapSavesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swimadmin_map_saves_total",
			Help: "Total number of level map saves by result",
		},
		[]string{"result"},
	)

	// EditorEventsTotal counts live editor session events by type.
	EditorEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swimadmin_editor_events_total",
			Help: "Total number of live map editor events",
		},
		[]string{"type"},
	)

	// UseCasesTotal counts service use cases by name and success.
	UseCasesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swimadmin_use_cases_total",
			Help: "Total number of service use cases executed",
		},
		[]string{"use_case", "success"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(MapSavesTotal)
	prometheus.MustRegister(EditorEventsTotal)
	prometheus.MustRegister(UseCasesTotal)
}

// MetricsObserver counts service use cases in UseCasesTotal.
type MetricsObserver struct{}

func (MetricsObserver) ObserveUseCase(_ context.Context, event service.UseCaseEvent) {
	UseCasesTotal.WithLabelValues(event.Name, strconv.FormatBool(event.Success)).Inc()
}

// MultiObserver fans a use-case event out to several observers.
type MultiObserver []service.UseCaseObserver

func (m MultiObserver) ObserveUseCase(ctx context.Context, event service.UseCaseEvent) {
	for _, obs := range m {
		if obs != nil {
			obs.ObserveUseCase(ctx, event)
		}
	}
}
