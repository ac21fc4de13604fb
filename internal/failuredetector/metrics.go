package failuredetector

import "github.com/prometheus/client_golang/prometheus"

var (
	TicksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ringmembership_failuredetector_ticks_total",
			Help: "Total number of protocol period ticks executed.",
		},
	)
	TickDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ringmembership_failuredetector_tick_duration_seconds",
			Help:    "Duration of a single protocol period tick.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// RegisterMetrics registers all metrics collectors with the given prometheus registerer.
func RegisterMetrics(registerer prometheus.Registerer) error {
	metrics := []prometheus.Collector{
		TicksTotal,
		TickDurationSeconds,
	}
	for _, metric := range metrics {
		if err := registerer.Register(metric); err != nil {
			return err
		}
	}
	return nil
}
