package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ringmembers/ringmembership/internal/dnsfile"
	"github.com/ringmembers/ringmembership/internal/wire"
)

// ErrAlreadyMember is returned by Join when the node has already completed a successful JoinAck.
var ErrAlreadyMember = errors.New("protocol: already a member")

// ErrNotMember is returned by Leave when the node is not currently a member.
var ErrNotMember = errors.New("protocol: not a member")

// ErrIntroducerUnavailable is returned by Join when the DNS file has no recorded introducer endpoint.
var ErrIntroducerUnavailable = errors.New("protocol: no introducer endpoint recorded in dns file")

// ListMembers returns the current membership list serialized as JSON, per LIST_MEM.
func (e *Engine) ListMembers() ([]byte, error) {
	e.commandMutex.Lock()
	defer e.commandMutex.Unlock()
	return json.Marshal(e.view.Snapshot())
}

// ListSelf returns this node's own member entry serialized as JSON, per LIST_SELF. Before JoinAck has been
// processed, self serializes as a zero-valued entry.
func (e *Engine) ListSelf() ([]byte, error) {
	e.commandMutex.Lock()
	defer e.commandMutex.Unlock()
	self, _ := e.view.Self()
	return json.Marshal(self)
}

// Join reads the introducer's endpoint from the DNS file and sends it a Join carrying this node's partial self.
// The full id is finalized by the introducer, and adopted here once the JoinAck arrives on the receive loop.
func (e *Engine) Join() error {
	e.commandMutex.Lock()
	defer e.commandMutex.Unlock()

	if e.view.IsMember() {
		return ErrAlreadyMember
	}

	host, portStr := e.dns.Read()
	if host == dnsfile.Inval || portStr == dnsfile.Inval {
		return ErrIntroducerUnavailable
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("protocol: introducer port in dns file is not numeric: %w", err)
	}

	partialID := fmt.Sprintf("%d-%d", e.config.MachineID, time.Now().Unix())
	e.send(host, port, wire.Message{
		Type: wire.MessageTypeJoin,
		Members: []wire.Member{{
			ID:           partialID,
			Address:      e.config.Hostname,
			PingsDropped: 0,
		}},
	})
	return nil
}

// Leave announces departure to every current successor, then clears the local view, per LEAVE.
func (e *Engine) Leave() error {
	e.commandMutex.Lock()
	defer e.commandMutex.Unlock()

	if !e.view.IsMember() {
		return ErrNotMember
	}

	self, ok := e.view.Self()
	if !ok {
		return ErrNotMember
	}
	for _, successor := range e.Successors() {
		e.send(successor.Address, successor.Port, wire.Message{
			Type:    wire.MessageTypeLeave,
			Members: []wire.Member{toWireMember(self)},
		})
	}

	e.view.ClearAndNotify(e.sink.OnMembershipChanged)
	e.view.SetIsMember(false)
	return nil
}

// Stop is a benign shutdown marker. The engine itself never initiates shutdown; the host process is responsible
// for tearing down the receive loop and ping task.
func (e *Engine) Stop() string {
	return "stopped"
}
