package protocol

import "github.com/ringmembers/ringmembership/internal/wire"

// handleJoinAck adopts the introducer's view wholesale on the joiner side. JoinAck has no guard: it is always
// processed, since a joiner has no other way to learn it has been admitted.
func (e *Engine) handleJoinAck(message wire.Message) {
	members := e.toViewMembers(message.Members)
	selfIndex := len(members) - 1
	e.view.ReplaceAllAndNotify(members, selfIndex, e.sink.OnMembershipChanged)
	e.view.SetIsMember(true)
	e.runElection()
}
