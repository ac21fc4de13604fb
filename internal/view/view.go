package view

import "sync"

// View is the thread-safe membership snapshot for one node. It holds one coarse mutex protecting members, self,
// ringPosition, and isMember together, so every reader sees a consistent combination of the four.
//
// View is safe for concurrent use by multiple goroutines.
type View struct {
	mutex sync.Mutex

	// members is the ordered sequence of known members. Insertion order is the order of reception: new members
	// are appended at the tail. This order is not sorted, but converges to be identical across live nodes modulo
	// gossip delay.
	members []Member

	// self is this node's own entry, valid only when hasSelf is true (i.e. before JoinAck, self is absent).
	self    Member
	hasSelf bool

	// ringPosition is the index of self within members. The invariant members[ringPosition] == self holds
	// whenever hasSelf is true.
	ringPosition int

	// isMember is true iff this node has received a JoinAck and has not yet executed LEAVE.
	isMember bool
}

// New creates an empty View.
func New() *View {
	return &View{}
}

// Snapshot returns a copy of the current member slice. Safe to read without further locking.
func (v *View) Snapshot() []Member {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	result := make([]Member, len(v.members))
	copy(result, v.members)
	return result
}

// Len returns the number of members currently known.
func (v *View) Len() int {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	return len(v.members)
}

// Self returns this node's own member entry. ok is false before JoinAck has been processed.
func (v *View) Self() (Member, bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	return v.self, v.hasSelf
}

// RingPosition returns the index of self within the member list. Only meaningful when Self reports ok.
func (v *View) RingPosition() int {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	return v.ringPosition
}

// IsMember reports whether this node currently believes itself to be part of the group.
func (v *View) IsMember() bool {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	return v.isMember
}

// SetIsMember updates the membership flag.
func (v *View) SetIsMember(isMember bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.isMember = isMember
}

// Append adds member to the tail of the list. It is idempotent on ID: if a member with the same ID is already
// present, the call has no effect and added reports false.
func (v *View) Append(member Member) (added bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	return v.appendLocked(member)
}

// AppendAndNotify behaves like Append, additionally invoking notify before the mutex is released if the member
// was actually added. This is the primitive the protocol engine's ChangeSink contract relies on: the observer
// runs while still holding the lock, so it always sees the mutation it was notified of and never races a reader
// that locks the view in between the mutation and the notification.
func (v *View) AppendAndNotify(member Member, notify func()) (added bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	added = v.appendLocked(member)
	if added && notify != nil {
		notify()
	}
	return added
}

func (v *View) appendLocked(member Member) (added bool) {
	for _, existing := range v.members {
		if existing.ID == member.ID {
			return false
		}
	}
	v.members = append(v.members, member)
	return true
}

// RemoveByID removes the member with the given ID, if present. It returns the index the member was removed from
// and whether it was found. If self is present and its ring position was after the removed index, ringPosition is
// decremented to preserve the members[ringPosition] == self invariant.
func (v *View) RemoveByID(id string) (removedIndex int, removed bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	return v.removeByIDLocked(id)
}

// RemoveByIDAndNotify behaves like RemoveByID, additionally invoking notify before the mutex is released if a
// member was actually removed. See AppendAndNotify for why notify runs while still locked.
func (v *View) RemoveByIDAndNotify(id string, notify func()) (removedIndex int, removed bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	removedIndex, removed = v.removeByIDLocked(id)
	if removed && notify != nil {
		notify()
	}
	return removedIndex, removed
}

func (v *View) removeByIDLocked(id string) (removedIndex int, removed bool) {
	for i, member := range v.members {
		if member.ID != id {
			continue
		}
		v.members = append(v.members[:i:i], v.members[i+1:]...)
		if v.hasSelf && v.ringPosition > i {
			v.ringPosition--
		}
		return i, true
	}
	return 0, false
}

// FindByID returns the member with the given ID, if present.
func (v *View) FindByID(id string) (Member, bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	for _, member := range v.members {
		if member.ID == id {
			return member, true
		}
	}
	return Member{}, false
}

// ResetPingsDroppedByID resets the given member's suspicion counter to 0, if present. If the member is self, the
// in-memory self copy is updated too, so Self keeps reporting a consistent value.
func (v *View) ResetPingsDroppedByID(id string) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	for i := range v.members {
		if v.members[i].ID == id {
			v.members[i].PingsDropped = 0
			break
		}
	}
	if v.hasSelf && v.self.ID == id {
		v.self.PingsDropped = 0
	}
}

// BumpPingsDroppedByID atomically increments the given member's suspicion counter and returns the new value.
// ok is false if the member is not present.
func (v *View) BumpPingsDroppedByID(id string) (newCount int, ok bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	for i := range v.members {
		if v.members[i].ID == id {
			v.members[i].PingsDropped++
			return v.members[i].PingsDropped, true
		}
	}
	return 0, false
}

// ReplaceAll wholesale replaces the member list, as happens when a JoinAck is processed: the joiner adopts the
// introducer's view verbatim and learns its own ring position within it.
func (v *View) ReplaceAll(members []Member, selfIndex int) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.replaceAllLocked(members, selfIndex)
}

// ReplaceAllAndNotify behaves like ReplaceAll, additionally invoking notify before the mutex is released. See
// AppendAndNotify for why notify runs while still locked.
func (v *View) ReplaceAllAndNotify(members []Member, selfIndex int, notify func()) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.replaceAllLocked(members, selfIndex)
	if notify != nil {
		notify()
	}
}

func (v *View) replaceAllLocked(members []Member, selfIndex int) {
	v.members = append([]Member(nil), members...)
	v.ringPosition = selfIndex
	if selfIndex >= 0 && selfIndex < len(v.members) {
		v.self = v.members[selfIndex]
		v.hasSelf = true
	}
}

// Clear empties the member list and forgets self, as happens when a node executes LEAVE. isMember is left
// untouched; callers set it explicitly after notifying observers, matching the command's documented step order.
func (v *View) Clear() {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.clearLocked()
}

// ClearAndNotify behaves like Clear, additionally invoking notify before the mutex is released. See
// AppendAndNotify for why notify runs while still locked.
func (v *View) ClearAndNotify(notify func()) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.clearLocked()
	if notify != nil {
		notify()
	}
}

func (v *View) clearLocked() {
	v.members = nil
	v.self = Member{}
	v.hasSelf = false
	v.ringPosition = 0
}
