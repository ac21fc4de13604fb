package transport

import (
	"math/rand"
	"strconv"
	"sync"
)

// datagram is a single recorded send, used by Memory to deliver payloads between in-process endpoints without a
// real network.
type datagram struct {
	payload []byte
	from    string
}

// MemoryRegistry is the shared lookup table a group of Memory transports uses to find each other by address:port.
// Tests construct one registry per simulated cluster and one Memory transport per simulated node.
type MemoryRegistry struct {
	mutex   sync.Mutex
	targets map[string]*Memory
}

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{targets: make(map[string]*Memory)}
}

func (r *MemoryRegistry) register(address string, port int, m *Memory) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.targets[addrKey(address, port)] = m
}

func (r *MemoryRegistry) lookup(address string, port int) (*Memory, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	m, ok := r.targets[addrKey(address, port)]
	return m, ok
}

func addrKey(address string, port int) string {
	return address + ":" + strconv.Itoa(port)
}

// Memory is a Sender/Receiver pair which moves datagrams through memory between members registered with the same
// MemoryRegistry. It is useful for deterministic integration tests which need several nodes exchanging gossip
// without any real network involved, grounded on the same role the teacher's own in-memory fake transports play
// for its membership list tests.
//
// Memory is safe for concurrent use by multiple goroutines.
type Memory struct {
	selfAddr string
	selfPort int
	inbox    chan datagram
	registry *MemoryRegistry
}

// Memory implements Sender and Receiver.
var (
	_ Sender   = (*Memory)(nil)
	_ Receiver = (*Memory)(nil)
)

// NewMemory creates a Memory transport bound to address:port and registers it with registry so other Memory
// transports sharing that registry can address it.
func NewMemory(registry *MemoryRegistry, address string, port int) *Memory {
	m := &Memory{
		selfAddr: address,
		selfPort: port,
		inbox:    make(chan datagram, 256),
		registry: registry,
	}
	registry.register(address, port, m)
	return m
}

// TrySend implements Sender. lossRate is honored the same way the real UDP transport honors it, so tests can
// exercise drop handling without a real lossy network.
func (m *Memory) TrySend(payload []byte, address string, port int, lossRate float64) bool {
	if rand.Float64() < lossRate {
		return false
	}
	target, ok := m.registry.lookup(address, port)
	if !ok {
		return false
	}

	buffer := make([]byte, len(payload))
	copy(buffer, payload)
	select {
	case target.inbox <- datagram{payload: buffer, from: m.selfAddr}:
		return true
	default:
		return false
	}
}

// Receive implements Receiver. It blocks until one datagram arrives or the transport is closed.
func (m *Memory) Receive() ([]byte, string) {
	d, ok := <-m.inbox
	if !ok {
		return nil, ""
	}
	return d.payload, d.from
}

// Close implements Receiver.
func (m *Memory) Close() error {
	close(m.inbox)
	return nil
}
