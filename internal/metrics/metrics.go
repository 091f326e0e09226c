// Package metrics holds the prometheus collectors of the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsInstalled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "store_generations_installed_total",
		Help: "Datasets installed into the snapshot store",
	})

	generationsReclaimed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "store_generations_reclaimed_total",
		Help: "Datasets released after their last reader finished",
	})

	currentUsers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "store_current_users",
		Help: "Number of users in the current dataset",
	})

	reportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analytics_report_duration_seconds",
		Help:    "Time spent computing a report",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
	}, []string{"report"})
)

// GenerationInstalled records a dataset swap.
func GenerationInstalled(users int) {
	generationsInstalled.Inc()
	currentUsers.Set(float64(users))
}

// GenerationReclaimed records a released dataset.
func GenerationReclaimed() {
	generationsReclaimed.Inc()
}

// ObserveReport records a report computation.
func ObserveReport(report string, d time.Duration) {
	reportDuration.WithLabelValues(report).Observe(d.Seconds())
}
