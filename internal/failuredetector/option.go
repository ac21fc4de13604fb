package failuredetector

import (
	"time"

	"github.com/go-logr/logr"
)

// Option is the function signature for all detector options to implement.
type Option func(config *Config)

// WithLogger sets the given logger for the detector.
func WithLogger(logger logr.Logger) Option {
	return func(config *Config) {
		config.Logger = logger
	}
}

// WithPingRate sets the given ping rate for the detector.
func WithPingRate(pingRate time.Duration) Option {
	return func(config *Config) {
		config.PingRate = pingRate
	}
}

// WithDropThreshold sets the given drop threshold for the detector.
func WithDropThreshold(dropThreshold int) Option {
	return func(config *Config) {
		config.DropThreshold = dropThreshold
	}
}
