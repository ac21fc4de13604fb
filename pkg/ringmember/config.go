// Package ringmember is the public facade over the membership node: it wires the wire codec, transport, view,
// protocol engine, failure detector, and DNS adapter into a single startable/shutdownable unit.
package ringmember

import (
	"time"

	"github.com/go-logr/logr"
)

// Config is the configuration a Node is constructed with.
type Config struct {
	// Logger is the logger to use for status information.
	Logger logr.Logger

	// MachineID is the small integer identifying this process.
	MachineID int

	// IsIntroducer marks this node as the cluster's initial introducer.
	IsIntroducer bool

	// AdvertisedAddress is the address this node reports of itself when it issues JOIN. If empty, the node
	// resolves its own outbound IP address.
	AdvertisedAddress string

	// BindAddress is the local address the UDP transport listens on, e.g. ":7778".
	BindAddress string

	// ClusterPort is the UDP port every node in the cluster listens on.
	ClusterPort int

	// PingRate is how often the failure detector pings its successors.
	PingRate time.Duration

	// DropThreshold is the number of consecutive missed pings tolerated before a successor is declared failed.
	DropThreshold int

	// LossRate is the probability, 0.0 to 1.0, that an outbound datagram is dropped before reaching the network.
	LossRate float64

	// DNSPath is the filesystem path of the cluster-shared file recording the current introducer's endpoint.
	DNSPath string

	// ChangeSinkURL, if set, is POSTed an empty notification after every membership change.
	ChangeSinkURL string
}

// DefaultConfig provides sane defaults for most situations.
var DefaultConfig = Config{
	BindAddress:   ":7778",
	ClusterPort:   7778,
	PingRate:      1 * time.Second,
	DropThreshold: 3,
	DNSPath:       "/tmp/ringmembership-dns",
}
