// Package failuredetector drives the membership protocol's ping task with the configured timing: a single
// cooperative periodic task that wakes every PingRate and, while the node is a member, runs one protocol period.
package failuredetector

import (
	"sync"
	"time"

	"github.com/go-logr/logr"
)

// Detector wakes the target at a fixed rate to run one failure-detection protocol period. It is separated from
// the membership algorithm itself so the algorithm can be driven deterministically in tests without real sleeps.
//
// Detector is safe for concurrent use. Startup and Shutdown must each be called exactly once, in that order.
type Detector struct {
	logger    logr.Logger
	config    Config
	target    Target
	ticker    *time.Ticker
	shutdown  chan struct{}
	waitGroup sync.WaitGroup
}

// New creates a Detector with the given target and options applied over DefaultConfig.
func New(target Target, options ...Option) *Detector {
	config := DefaultConfig
	for _, option := range options {
		option(&config)
	}
	return &Detector{
		logger:   config.Logger,
		config:   config,
		target:   target,
		shutdown: make(chan struct{}),
	}
}

// Startup begins the ping task. It runs until Shutdown is called.
func (d *Detector) Startup() {
	d.logger.Info("Failure detector startup")
	d.ticker = time.NewTicker(d.config.PingRate)
	d.waitGroup.Go(d.run)
}

// Shutdown stops the ping task and blocks until it has exited.
func (d *Detector) Shutdown() {
	d.logger.Info("Failure detector shutdown")
	close(d.shutdown)
	d.ticker.Stop()
	d.waitGroup.Wait()
}

func (d *Detector) run() {
	d.logger.Info("Ping task started")
	defer d.logger.Info("Ping task finished")
	for {
		select {
		case <-d.shutdown:
			return
		case <-d.ticker.C:
			if !d.target.IsMember() {
				continue
			}
			start := time.Now()
			d.target.RunTick()
			TickDurationSeconds.Observe(time.Since(start).Seconds())
			TicksTotal.Inc()
		}
	}
}
