package ringmember

import (
	"github.com/prometheus/client_golang/prometheus"

	intfailuredetector "github.com/ringmembers/ringmembership/internal/failuredetector"
	intprotocol "github.com/ringmembers/ringmembership/internal/protocol"
	inttransport "github.com/ringmembers/ringmembership/internal/transport"
)

// RegisterMetrics registers every internal package's metrics collectors with the given prometheus registerer.
func RegisterMetrics(registerer prometheus.Registerer) error {
	if err := intprotocol.RegisterMetrics(registerer); err != nil {
		return err
	}
	if err := intfailuredetector.RegisterMetrics(registerer); err != nil {
		return err
	}
	if err := inttransport.RegisterMetrics(registerer); err != nil {
		return err
	}
	return nil
}
