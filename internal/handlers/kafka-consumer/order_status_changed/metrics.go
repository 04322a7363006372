package order_status_changed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_status_events_total",
			Help: "Total number of order status events by processing outcome",
		},
		[]string{"outcome"},
	)

	EventLagSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_status_event_lag_seconds",
			Help:    "Delay between the status change and its processing",
			Buckets: []float64{.1, .5, 1, 5, 15, 60, 300, 900},
		},
	)
)
