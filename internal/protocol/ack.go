package protocol

import "github.com/ringmembers/ringmembership/internal/wire"

// handleAck resets the replying member's suspicion counter to 0, clearing whatever the failure detector had bumped
// it to since the last successful round-trip.
func (e *Engine) handleAck(message wire.Message) {
	if !e.view.IsMember() || len(message.Members) == 0 {
		MessagesDroppedTotal.WithLabelValues("guard").Inc()
		return
	}
	e.view.ResetPingsDroppedByID(message.Members[0].ID)
}
