package protocol

import "sync"

// commandMutex serializes the engine's command surface (JOIN, LEAVE, LIST_MEM, LIST_SELF) against itself. It is a
// plain mutex under a named type so its zero value is ready to use and its purpose is visible at the call site.
type commandMutex struct {
	mutex sync.Mutex
}

func (m *commandMutex) Lock()   { m.mutex.Lock() }
func (m *commandMutex) Unlock() { m.mutex.Unlock() }

// electionState holds the introducer-election bookkeeping that lives outside the membership view: whether this
// node has ever won an election, and the lowest member ID as of the last election round that was committed.
type electionState struct {
	mutex         sync.Mutex
	isIntroducer  bool
	previousMinID string
}

func (s *electionState) get() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.isIntroducer
}

// setBootstrap marks this node as the introducer directly, bypassing the normal election rule. Used only once, at
// startup, for the operator-designated bootstrap introducer: the DNS file is seeded with its own endpoint before
// any member has had a chance to elect it by comparing ids.
func (s *electionState) setBootstrap() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.isIntroducer = true
}

// evaluate runs one round of election bookkeeping under the state's own lock. minID is the lowest member ID
// currently in the view (including self) and selfID is this node's own ID. won reports that this node is the new
// minimum, so the caller should publish its endpoint to the DNS file; it also marks the node introducer. unchanged
// reports that minID is the same as the last successful round, so the caller should not bother rewriting the DNS
// file.
//
// previousMinID is only advanced when the caller confirms the DNS write succeeded, via commit. This lets a failed
// write be retried automatically on the next election round.
func (s *electionState) evaluate(selfID, minID string) (won bool, unchanged bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if minID == s.previousMinID {
		return false, true
	}
	if minID == selfID {
		s.isIntroducer = true
		won = true
	}
	return won, false
}

// commit records minID as the last successfully-handled minimum. Called after a successful DNS write, or directly
// when the new minimum is another node and there is nothing to publish.
func (s *electionState) commit(minID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.previousMinID = minID
}
