package failuredetector

import (
	"time"

	"github.com/go-logr/logr"
)

// Config is the configuration a Detector is constructed with.
type Config struct {
	// Logger is the logger to use for status information.
	Logger logr.Logger

	// PingRate is the interval between ticks of the ping task.
	PingRate time.Duration

	// DropThreshold is the number of consecutive missed pings tolerated before a successor is declared failed.
	DropThreshold int
}

// DefaultConfig provides sane defaults for most situations.
var DefaultConfig = Config{
	PingRate:      1 * time.Second,
	DropThreshold: 3,
}
