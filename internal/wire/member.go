package wire

// Member is a peer descriptor as it travels over the wire. Only the fields which are actually transmitted are
// present here; Port is not part of the wire form and must be filled in by the caller from the receiver's own
// configured listening port, since the protocol assumes a cluster-wide uniform port.
type Member struct {
	// ID is the opaque identifier of the member, unique per incarnation.
	ID string

	// Address is the dotted-quad address observed for the member.
	Address string

	// PingsDropped is the sender's local suspicion counter for this member. It is only meaningful on the owning
	// node's own copy; receivers carry the transmitted value over into the member entries they build from the
	// message.
	PingsDropped int
}

// CompareMemberByID orders members lexicographically by ID, matching the introducer-election rule.
func CompareMemberByID(lhs, rhs Member) int {
	switch {
	case lhs.ID < rhs.ID:
		return -1
	case lhs.ID > rhs.ID:
		return 1
	default:
		return 0
	}
}
