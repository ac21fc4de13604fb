package ringmember

import (
	"time"

	"github.com/go-logr/logr"
)

// Option customizes a Config away from DefaultConfig.
type Option func(config *Config)

// WithLogger sets the given logger for the node.
func WithLogger(logger logr.Logger) Option {
	return func(config *Config) {
		config.Logger = logger
	}
}

// WithMachineID sets the given machine id for the node.
func WithMachineID(machineID int) Option {
	return func(config *Config) {
		config.MachineID = machineID
	}
}

// WithIsIntroducer marks this node as the cluster's initial introducer.
func WithIsIntroducer(isIntroducer bool) Option {
	return func(config *Config) {
		config.IsIntroducer = isIntroducer
	}
}

// WithAdvertisedAddress sets the address the node reports of itself when it issues JOIN.
func WithAdvertisedAddress(address string) Option {
	return func(config *Config) {
		config.AdvertisedAddress = address
	}
}

// WithBindAddress sets the local address the UDP transport listens on.
func WithBindAddress(bindAddress string) Option {
	return func(config *Config) {
		config.BindAddress = bindAddress
	}
}

// WithClusterPort sets the UDP port every node in the cluster listens on.
func WithClusterPort(port int) Option {
	return func(config *Config) {
		config.ClusterPort = port
	}
}

// WithPingRate sets the failure detector's ping interval.
func WithPingRate(pingRate time.Duration) Option {
	return func(config *Config) {
		config.PingRate = pingRate
	}
}

// WithDropThreshold sets the number of consecutive missed pings tolerated before a successor is declared failed.
func WithDropThreshold(dropThreshold int) Option {
	return func(config *Config) {
		config.DropThreshold = dropThreshold
	}
}

// WithLossRate sets the simulated network's datagram loss probability.
func WithLossRate(lossRate float64) Option {
	return func(config *Config) {
		config.LossRate = lossRate
	}
}

// WithDNSPath sets the path of the cluster-shared introducer-endpoint file.
func WithDNSPath(path string) Option {
	return func(config *Config) {
		config.DNSPath = path
	}
}

// WithChangeSinkURL sets the downstream URL notified after every membership change.
func WithChangeSinkURL(url string) Option {
	return func(config *Config) {
		config.ChangeSinkURL = url
	}
}
