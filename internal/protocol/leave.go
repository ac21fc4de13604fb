package protocol

import "github.com/ringmembers/ringmembership/internal/wire"

// handleLeave gossip-removes a member on the peer side, whether the Leave arrived over the wire or was
// synthesized locally by the failure detector upon exhausting dropThreshold. Like Introduce, it forwards only
// once: a member already absent is dropped silently, which is what stops the gossip wave once it has visited
// every live node.
func (e *Engine) handleLeave(message wire.Message) {
	if !e.view.IsMember() || len(message.Members) == 0 {
		MessagesDroppedTotal.WithLabelValues("guard").Inc()
		return
	}
	m := message.Members[0]
	if _, removed := e.view.RemoveByIDAndNotify(m.ID, e.sink.OnMembershipChanged); !removed {
		return
	}
	e.runElection()

	for _, successor := range e.Successors() {
		e.send(successor.Address, successor.Port, wire.Message{
			Type:    wire.MessageTypeLeave,
			Members: []wire.Member{m},
		})
	}
}

// SynthesizeLeave is invoked by the failure detector when a successor exceeds dropThreshold missed pings. It is
// handled identically to a Leave received over the wire.
func (e *Engine) SynthesizeLeave(m wire.Member) {
	e.handleLeave(wire.Message{Type: wire.MessageTypeLeave, Members: []wire.Member{m}})
}
