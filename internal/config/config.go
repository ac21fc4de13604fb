// Package config loads the node's static configuration from a TOML file, falling back to sane defaults for any
// section the file omits.
package config

import "time"

// File is the decoded shape of the TOML configuration file.
type File struct {
	Node      NodeSection      `toml:"node"`
	Protocol  ProtocolSection  `toml:"protocol"`
	Transport TransportSection `toml:"transport"`
}

// NodeSection identifies this node and whether it bootstraps the cluster.
type NodeSection struct {
	// MachineID is the small integer identifying this process.
	MachineID int `toml:"machine_id"`

	// IsIntroducer marks this node as the cluster's initial introducer. At most one node in a fresh cluster should
	// set this; all others join through the DNS-recorded introducer.
	IsIntroducer bool `toml:"is_introducer"`

	// Hostname is the address this node advertises of itself. Left empty, the node uses the local IP address of its
	// outbound route.
	Hostname string `toml:"hostname"`
}

// ProtocolSection tunes the failure detector and gossip timing.
type ProtocolSection struct {
	// Port is the UDP port every node in the cluster listens on and gossips to.
	Port int `toml:"port"`

	// PingRate is how often, in seconds, the failure detector pings its successors.
	PingRate float64 `toml:"ping_rate_seconds"`

	// DropThreshold is the number of consecutive missed pings tolerated before a successor is declared failed.
	DropThreshold int `toml:"drop_threshold"`

	// DNSPath is the filesystem path of the cluster-shared file recording the current introducer's endpoint.
	DNSPath string `toml:"dns_path"`
}

// TransportSection tunes the simulated network.
type TransportSection struct {
	// LossRate is the probability, 0.0 to 1.0, that an outbound datagram is dropped before reaching the network.
	LossRate float64 `toml:"loss_rate"`

	// ChangeSinkURL, if set, is POSTed an empty notification after every membership change.
	ChangeSinkURL string `toml:"change_sink_url"`

	// ControlAddress is the bind address of the HTTP control surface.
	ControlAddress string `toml:"control_address"`
}

// DefaultConfig provides sane defaults for every section. A missing or partially-filled TOML file is overlaid on
// top of this, field by field, by Load.
func DefaultConfig() File {
	return File{
		Node: NodeSection{
			MachineID:    0,
			IsIntroducer: false,
			Hostname:     "",
		},
		Protocol: ProtocolSection{
			Port:          7778,
			PingRate:      1,
			DropThreshold: 3,
			DNSPath:       "/tmp/ringmembership-dns",
		},
		Transport: TransportSection{
			LossRate:       0,
			ChangeSinkURL:  "",
			ControlAddress: ":7779",
		},
	}
}

// PingInterval converts the fractional-seconds PingRate into a time.Duration.
func (p ProtocolSection) PingInterval() time.Duration {
	return time.Duration(p.PingRate * float64(time.Second))
}
