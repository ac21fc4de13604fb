package protocol

import "github.com/ringmembers/ringmembership/internal/view"

// BootstrapIntroducer seeds this node as the cluster's initial introducer: it writes its own address to the DNS
// file and marks itself introducer directly, without waiting for the normal minimum-id election rule to agree.
// Call once at startup, before the receive loop and failure detector start, for the operator-designated bootstrap
// node only.
func (e *Engine) BootstrapIntroducer(address string, port int) error {
	if err := e.dns.Write(address, port); err != nil {
		return err
	}
	e.election.setBootstrap()
	return nil
}

// runElection re-evaluates the introducer-election rule after a membership change: the node whose id is the
// lexicographic minimum among all live members is the introducer. It is invoked by the JoinAck and Leave handlers;
// the Join and Introduce handlers append members without running it.
//
// On a DNS write failure the new minimum is deliberately not recorded, so the next call retries the write against
// the same minimum rather than silently giving up forever.
func (e *Engine) runElection() {
	self, ok := e.view.Self()
	if !ok {
		return
	}
	members := e.view.Snapshot()
	if len(members) == 0 {
		return
	}

	min := members[0]
	for _, m := range members[1:] {
		if view.CompareByID(m, min) < 0 {
			min = m
		}
	}

	won, unchanged := e.election.evaluate(self.ID, min.ID)
	if unchanged {
		return
	}
	if !won {
		e.election.commit(min.ID)
		return
	}

	if err := e.dns.Write(self.Address, self.Port); err != nil {
		DnsWriteErrorsTotal.Inc()
		e.logger.Error(err, "Writing introducer endpoint to DNS file.")
		return
	}
	ElectionsWonTotal.Inc()
	e.election.commit(min.ID)
}
