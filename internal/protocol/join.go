package protocol

import (
	"github.com/ringmembers/ringmembership/internal/wire"
)

// handleJoin accepts a Join on the introducer side. The guard requires that this node already believes itself the
// introducer, that the message actually carries a partial self to admit, and that either this node is already a
// member or the joiner is this very node bootstrapping its own view (machine ID embedded in the partial id
// matches this node's own, per the preserved std::stoi-prefix behavior).
func (e *Engine) handleJoin(message wire.Message, senderAddr string) {
	if !e.IsIntroducer() || len(message.Members) == 0 {
		MessagesDroppedTotal.WithLabelValues("guard").Inc()
		return
	}
	partial := message.Members[0]
	selfJoin := false
	if prefix, ok := parseIntPrefix(partial.ID); ok {
		selfJoin = prefix == e.config.MachineID
	}
	if !e.view.IsMember() && !selfJoin {
		MessagesDroppedTotal.WithLabelValues("guard").Inc()
		return
	}

	partial.ID = partial.ID + "-" + senderAddr
	partial.Address = senderAddr

	for _, successor := range e.Successors() {
		e.send(successor.Address, successor.Port, wire.Message{
			Type:    wire.MessageTypeIntroduce,
			Members: []wire.Member{toWireMember(partial)},
		})
	}

	e.view.AppendAndNotify(e.toViewMember(partial), e.sink.OnMembershipChanged)

	e.send(partial.Address, e.config.ClusterPort, wire.Message{
		Type:    wire.MessageTypeJoinAck,
		Members: toWireMembers(e.view.Snapshot()),
	})
}
