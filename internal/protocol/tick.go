package protocol

import "github.com/ringmembers/ringmembership/internal/wire"

// IsMember reports whether this node currently believes itself part of the group. Implements
// failuredetector.Target.
func (e *Engine) IsMember() bool {
	return e.view.IsMember()
}

// RunTick executes one protocol period: for each current successor, bump its suspicion counter; past
// dropThreshold, synthesize its removal instead of pinging it. Implements failuredetector.Target.
func (e *Engine) RunTick() {
	for _, successor := range e.Successors() {
		n, ok := e.view.BumpPingsDroppedByID(successor.ID)
		if !ok {
			continue
		}
		if n > e.config.DropThreshold {
			e.SynthesizeLeave(toWireMember(successor))
			continue
		}
		e.send(successor.Address, successor.Port, wire.Message{Type: wire.MessageTypePing})
	}
}
