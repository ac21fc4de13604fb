package protocol

// NumMonitors is the fixed number of successors pinged and gossiped to on each ring traversal.
const NumMonitors = 3

// Config is the static configuration an Engine is constructed with.
type Config struct {
	// MachineID is the small integer identifying this process, assigned by the operator. It is the first
	// component of every ID this node mints for itself.
	MachineID int

	// ClusterPort is the UDP port every node in the cluster listens on. Member.Port is not transmitted on the
	// wire, so a received member's port always defaults to this value.
	ClusterPort int

	// Hostname is the address this node reports of itself when issuing JOIN; it is overwritten by the introducer
	// with the address it actually observed the connection from.
	Hostname string

	// LossRate is the probability, 0.0 to 1.0, that any outbound datagram this engine sends is dropped by the
	// transport before reaching the network. This simulates a lossy network for testing.
	LossRate float64

	// DropThreshold is the number of consecutive missed pings a successor tolerates before RunTick synthesizes its
	// removal. It is duplicated here (rather than only living in failuredetector.Config) because the decision of
	// whether a count exceeds it is part of the protocol algorithm itself, not the scheduling wrapper around it.
	DropThreshold int
}
