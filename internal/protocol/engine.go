// Package protocol implements the SWIM-style membership protocol engine: inbound message dispatch, the
// join/introduce/leave gossip handlers, introducer election, and the user command surface. It is the sole mutator
// of the membership view.
package protocol

import (
	"strconv"

	"github.com/go-logr/logr"

	"github.com/ringmembers/ringmembership/internal/changesink"
	"github.com/ringmembers/ringmembership/internal/dnsfile"
	"github.com/ringmembers/ringmembership/internal/transport"
	"github.com/ringmembers/ringmembership/internal/view"
	"github.com/ringmembers/ringmembership/internal/wire"
)

// Engine dispatches inbound messages, drives the join/introduce/leave gossip protocol, runs the introducer
// election, and exposes the command entry points (JOIN, LEAVE, LIST_MEM, LIST_SELF) invoked by the host process.
// Engine is the sole mutator of the membership view.
//
// Engine is safe for concurrent use by multiple goroutines.
type Engine struct {
	logger logr.Logger
	config Config

	view   *view.View
	sender transport.Sender
	dns    dnsfile.Writer
	sink   changesink.Sink

	// commandMutex serializes LIST_MEM/LIST_SELF/JOIN/LEAVE against each other. It does not serialize against the
	// receive loop, which only ever goes through the view's own locking.
	commandMutex commandMutex

	// election serializes introducer election bookkeeping under its own mutex, which is engine state rather than view state:
	// isIntroducer and previousMinID live outside the membership view's own mutex.
	election electionState
}

// New creates an Engine. sender, dns, and sink must not be nil; use changesink.Noop{} if no downstream observer
// is needed.
func New(logger logr.Logger, config Config, sender transport.Sender, dns dnsfile.Writer, sink changesink.Sink) *Engine {
	return &Engine{
		logger: logger,
		config: config,
		view:   view.New(),
		sender: sender,
		dns:    dns,
		sink:   sink,
	}
}

// View exposes the engine's membership view for read-only inspection by callers such as the HTTP control surface.
func (e *Engine) View() *view.View {
	return e.view
}

// IsIntroducer reports whether this node currently believes itself to be the introducer. Once true, it is never
// cleared for the lifetime of the process, matching spec.md's preserved behavior.
func (e *Engine) IsIntroducer() bool {
	return e.election.get()
}

// ReceiveLoop blocks on receiver.Receive and dispatches every datagram it gets. It never returns: a nil payload is
// skipped and Receive is called again, including after receiver has been closed. It runs in its own goroutine for
// the lifetime of the process.
func (e *Engine) ReceiveLoop(receiver transport.Receiver) {
	e.logger.Info("Receive loop started")
	defer e.logger.Info("Receive loop finished")
	for {
		payload, senderAddr := receiver.Receive()
		if payload == nil {
			// TransportReceiveFail: treated as a skip, per spec.md §7.
			continue
		}
		e.DispatchDatagram(payload, senderAddr)
	}
}

// DispatchDatagram decodes a single datagram and routes it to the matching handler. Codec errors are logged at
// info level and the datagram is dropped; guard failures are dropped silently, exactly as spec.md §4.F.2 and §7 specify.
func (e *Engine) DispatchDatagram(payload []byte, senderAddr string) {
	message, err := wire.Decode(payload)
	if err != nil {
		reason := "malformed"
		if err == wire.ErrUnknownType {
			reason = "unknown_type"
		}
		MessagesDroppedTotal.WithLabelValues(reason).Inc()
		e.logger.Info("Dropping malformed datagram.", "reason", reason, "from", senderAddr, "error", err.Error())
		return
	}

	MessagesHandledTotal.WithLabelValues(message.Type.String()).Inc()
	switch message.Type {
	case wire.MessageTypeJoin:
		e.handleJoin(message, senderAddr)
	case wire.MessageTypeJoinAck:
		e.handleJoinAck(message)
	case wire.MessageTypeIntroduce:
		e.handleIntroduce(message)
	case wire.MessageTypePing:
		e.handlePing(senderAddr)
	case wire.MessageTypeAck:
		e.handleAck(message)
	case wire.MessageTypeLeave:
		e.handleLeave(message)
	}
}

// send encodes message and transmits it to address:port, subject to the engine's configured loss rate.
func (e *Engine) send(address string, port int, message wire.Message) bool {
	return e.sender.TrySend(wire.Encode(message), address, port, e.config.LossRate)
}

// toViewMember fills in the port field the wire form omits with the cluster's uniform port.
func (e *Engine) toViewMember(m wire.Member) view.Member {
	return view.Member{
		ID:           m.ID,
		Address:      m.Address,
		Port:         e.config.ClusterPort,
		PingsDropped: m.PingsDropped,
	}
}

func (e *Engine) toViewMembers(members []wire.Member) []view.Member {
	result := make([]view.Member, len(members))
	for i, m := range members {
		result[i] = e.toViewMember(m)
	}
	return result
}

// toWireMember drops the port field, which is never transmitted.
func toWireMember(m view.Member) wire.Member {
	return wire.Member{
		ID:           m.ID,
		Address:      m.Address,
		PingsDropped: m.PingsDropped,
	}
}

func toWireMembers(members []view.Member) []wire.Member {
	result := make([]wire.Member, len(members))
	for i, m := range members {
		result[i] = toWireMember(m)
	}
	return result
}

// parseIntPrefix parses the longest leading run of decimal digits in s, mirroring std::stoi's behavior of parsing
// only the integer prefix and ignoring any trailing characters. ok is false if s has no digit prefix at all.
func parseIntPrefix(s string) (value int, ok bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
