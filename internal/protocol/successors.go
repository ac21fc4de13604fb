package protocol

import "github.com/ringmembers/ringmembership/internal/view"

// computeSuccessors returns up to NumMonitors members immediately following position on the ring, wrapping
// around. position is an index into members, not included in the result. If members has NumMonitors or fewer
// entries besides the one at position, every other member is returned.
func computeSuccessors(members []view.Member, position int) []view.Member {
	n := len(members)
	if n <= 1 {
		return nil
	}
	count := NumMonitors
	if count > n-1 {
		count = n - 1
	}
	successors := make([]view.Member, 0, count)
	for i := 1; i <= count; i++ {
		successors = append(successors, members[(position+i)%n])
	}
	return successors
}

// Successors returns this node's current successor set on the ring.
func (e *Engine) Successors() []view.Member {
	members := e.view.Snapshot()
	position := e.view.RingPosition()
	return computeSuccessors(members, position)
}
