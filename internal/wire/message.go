package wire

// Message is the decoded form of a single datagram exchanged between nodes.
type Message struct {
	// Type selects which protocol handler the message is dispatched to.
	Type MessageType

	// Members carries zero or more member entries. Join/JoinAck/Introduce/Ping/Ack/Leave all reuse this single
	// slice; which entries are meaningful and how many are expected depends on Type.
	Members []Member
}
