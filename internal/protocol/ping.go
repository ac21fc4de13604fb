package protocol

import "github.com/ringmembers/ringmembership/internal/wire"

// handlePing replies with an Ack carrying this node's own entry, addressed back to the sender.
func (e *Engine) handlePing(senderAddr string) {
	if !e.view.IsMember() {
		MessagesDroppedTotal.WithLabelValues("guard").Inc()
		return
	}
	self, ok := e.view.Self()
	if !ok {
		return
	}
	e.send(senderAddr, e.config.ClusterPort, wire.Message{
		Type:    wire.MessageTypeAck,
		Members: []wire.Member{toWireMember(self)},
	})
}
