package protocol

import "github.com/prometheus/client_golang/prometheus"

var (
	MessagesHandledTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ringmembership_protocol_messages_handled_total",
			Help: "Total number of inbound messages handled, by type.",
		},
		[]string{"type"},
	)
	MessagesDroppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ringmembership_protocol_messages_dropped_total",
			Help: "Total number of inbound messages dropped, by reason.",
		},
		[]string{"reason"}, // malformed, unknown_type, guard
	)
	ElectionsWonTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ringmembership_protocol_elections_won_total",
			Help: "Total number of times this node became the introducer.",
		},
	)
	DnsWriteErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ringmembership_protocol_dns_write_errors_total",
			Help: "Total number of failed DNS file writes during introducer election.",
		},
	)
)

// RegisterMetrics registers all metrics collectors with the given prometheus registerer.
func RegisterMetrics(registerer prometheus.Registerer) error {
	metrics := []prometheus.Collector{
		MessagesHandledTotal,
		MessagesDroppedTotal,
		ElectionsWonTotal,
		DnsWriteErrorsTotal,
	}
	for _, metric := range metrics {
		if err := registerer.Register(metric); err != nil {
			return err
		}
	}
	return nil
}
