package protocol

import "github.com/ringmembers/ringmembership/internal/wire"

// handleIntroduce gossip-appends a member on the peer side. Forwarding happens unconditionally after a successful
// append so that a duplicate arrival (the member already present) is dropped without re-forwarding, giving every
// live node exactly one forward per member no matter how many paths the gossip takes to reach it.
func (e *Engine) handleIntroduce(message wire.Message) {
	if !e.view.IsMember() || len(message.Members) == 0 {
		MessagesDroppedTotal.WithLabelValues("guard").Inc()
		return
	}
	m := message.Members[0]
	if _, found := e.view.FindByID(m.ID); found {
		return
	}
	e.view.AppendAndNotify(e.toViewMember(m), e.sink.OnMembershipChanged)

	for _, successor := range e.Successors() {
		e.send(successor.Address, successor.Port, wire.Message{
			Type:    wire.MessageTypeIntroduce,
			Members: []wire.Member{m},
		})
	}
}
