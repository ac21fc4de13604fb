package ringmember

import (
	"fmt"

	"github.com/ringmembers/ringmembership/internal/changesink"
	"github.com/ringmembers/ringmembership/internal/dnsfile"
	"github.com/ringmembers/ringmembership/internal/failuredetector"
	"github.com/ringmembers/ringmembership/internal/protocol"
	"github.com/ringmembers/ringmembership/internal/transport"
)

// Node is a single running membership process: the protocol engine, its UDP transport, and the failure detector
// driving it, wired together and ready to Startup/Shutdown as a unit.
type Node struct {
	config  Config
	engine  *protocol.Engine
	udp     *transport.UDP
	monitor *failuredetector.Detector
}

// New constructs a Node. It binds the UDP socket immediately so BindAddress errors surface before Startup, but
// does not start the receive loop or failure detector until Startup is called.
func New(options ...Option) (*Node, error) {
	config := DefaultConfig
	for _, option := range options {
		option(&config)
	}

	advertisedAddress, err := resolveAdvertisedAddress(config.AdvertisedAddress)
	if err != nil {
		return nil, fmt.Errorf("resolving advertised address: %w", err)
	}
	config.AdvertisedAddress = advertisedAddress

	udp, err := transport.Listen(config.BindAddress)
	if err != nil {
		return nil, fmt.Errorf("binding udp transport: %w", err)
	}

	var sink changesink.Sink = changesink.Noop{}
	if config.ChangeSinkURL != "" {
		sink = changesink.NewHTTPSink(config.Logger, config.ChangeSinkURL)
	}

	engine := protocol.New(
		config.Logger,
		protocol.Config{
			MachineID:     config.MachineID,
			ClusterPort:   config.ClusterPort,
			Hostname:      config.AdvertisedAddress,
			LossRate:      config.LossRate,
			DropThreshold: config.DropThreshold,
		},
		udp,
		dnsfile.New(config.DNSPath),
		sink,
	)

	monitor := failuredetector.New(
		engine,
		failuredetector.WithLogger(config.Logger),
		failuredetector.WithPingRate(config.PingRate),
		failuredetector.WithDropThreshold(config.DropThreshold),
	)

	return &Node{
		config:  config,
		engine:  engine,
		udp:     udp,
		monitor: monitor,
	}, nil
}

// Startup begins the receive loop and failure detector. If this node is configured as the cluster's bootstrap
// introducer, it first seeds the DNS file with its own endpoint.
func (n *Node) Startup() error {
	if n.config.IsIntroducer {
		if err := n.engine.BootstrapIntroducer(n.config.AdvertisedAddress, n.config.ClusterPort); err != nil {
			return fmt.Errorf("bootstrapping introducer: %w", err)
		}
	}
	go n.engine.ReceiveLoop(n.udp)
	n.monitor.Startup()
	return nil
}

// Shutdown stops the failure detector and closes the UDP socket. Closing the socket does not end the receive loop
// goroutine: its Receive calls then fail at once and are skipped until the process exits.
func (n *Node) Shutdown() error {
	n.monitor.Shutdown()
	return n.udp.Close()
}

// Engine exposes the underlying protocol engine, e.g. for mounting the HTTP control surface.
func (n *Node) Engine() *protocol.Engine {
	return n.engine
}

// ListMembers returns the current membership list serialized as JSON.
func (n *Node) ListMembers() ([]byte, error) {
	return n.engine.ListMembers()
}

// ListSelf returns this node's own member entry serialized as JSON.
func (n *Node) ListSelf() ([]byte, error) {
	return n.engine.ListSelf()
}

// Join issues this node's JOIN command.
func (n *Node) Join() error {
	return n.engine.Join()
}

// Leave issues this node's LEAVE command.
func (n *Node) Leave() error {
	return n.engine.Leave()
}

// Stop returns the benign shutdown marker, per the protocol's STOP command.
func (n *Node) Stop() string {
	return n.engine.Stop()
}

// IsIntroducer reports whether this node currently believes itself to be the introducer.
func (n *Node) IsIntroducer() bool {
	return n.engine.IsIntroducer()
}
