package transport

import "github.com/prometheus/client_golang/prometheus"

var (
	SendsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ringmembership_transport_sends_total",
			Help: "Total number of datagram send attempts, by outcome.",
		},
		[]string{"outcome"}, // sent, dropped_loss, error
	)
	ReceiveErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ringmembership_transport_receive_errors_total",
			Help: "Total number of errors encountered while receiving datagrams.",
		},
	)
	ReceivedBytesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ringmembership_transport_received_bytes_total",
			Help: "Total number of bytes received across all datagrams.",
		},
	)
)

// RegisterMetrics registers all metrics collectors with the given prometheus registerer.
func RegisterMetrics(registerer prometheus.Registerer) error {
	metrics := []prometheus.Collector{
		SendsTotal,
		ReceiveErrorsTotal,
		ReceivedBytesTotal,
	}
	for _, metric := range metrics {
		if err := registerer.Register(metric); err != nil {
			return err
		}
	}
	return nil
}
