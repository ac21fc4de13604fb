package transport

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"strconv"
	"syscall"
)

// UDP provides both the Sender and Receiver capabilities over a real UDP socket.
//
// UDP is stateless across messages: Send dials a fresh socket for every call instead of holding a long-lived
// connection, matching the transport's best-effort, connectionless contract.
type UDP struct {
	connection *net.UDPConn
}

// UDP implements Sender and Receiver.
var (
	_ Sender   = (*UDP)(nil)
	_ Receiver = (*UDP)(nil)
)

// Listen binds a UDP socket on bindAddress (host:port) with SO_REUSEADDR set, so a restarting node can rebind to
// the same port without waiting out the OS's TIME_WAIT-style grace period.
func Listen(bindAddress string) (*UDP, error) {
	listenConfig := net.ListenConfig{
		Control: func(_, _ string, rawConn syscall.RawConn) error {
			var controlErr error
			if err := rawConn.Control(func(fd uintptr) {
				controlErr = syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_REUSEADDR, 1)
			}); err != nil {
				return err
			}
			return controlErr
		},
	}

	packetConn, err := listenConfig.ListenPacket(context.Background(), "udp", bindAddress)
	if err != nil {
		return nil, fmt.Errorf("binding udp socket: %w", err)
	}
	connection, ok := packetConn.(*net.UDPConn)
	if !ok {
		return nil, errors.New("listen config did not return a udp connection")
	}
	return &UDP{connection: connection}, nil
}

// Addr returns the address the socket is bound to.
func (u *UDP) Addr() (string, int, error) {
	host, port, err := net.SplitHostPort(u.connection.LocalAddr().String())
	if err != nil {
		return "", 0, err
	}
	typedPort, err := strconv.Atoi(port)
	if err != nil {
		return "", 0, err
	}
	return host, typedPort, nil
}

// TrySend implements Sender.
func (u *UDP) TrySend(payload []byte, address string, port int, lossRate float64) bool {
	if rand.Float64() < lossRate {
		SendsTotal.WithLabelValues("dropped_loss").Inc()
		return false
	}

	connection, err := net.Dial("udp", net.JoinHostPort(address, strconv.Itoa(port)))
	if err != nil {
		SendsTotal.WithLabelValues("error").Inc()
		return false
	}
	defer connection.Close()

	if _, err := connection.Write(payload); err != nil {
		SendsTotal.WithLabelValues("error").Inc()
		return false
	}
	SendsTotal.WithLabelValues("sent").Inc()
	return true
}

// Receive implements Receiver. It blocks until one datagram arrives.
func (u *UDP) Receive() ([]byte, string) {
	buffer := make([]byte, MaxDatagramLength+1)
	n, senderAddr, err := u.connection.ReadFromUDP(buffer)
	if err != nil {
		ReceiveErrorsTotal.Inc()
		return nil, ""
	}
	if n > MaxDatagramLength {
		n = MaxDatagramLength
	}
	ReceivedBytesTotal.Add(float64(n))
	return buffer[:n], senderAddr.IP.String()
}

// Close implements Receiver.
func (u *UDP) Close() error {
	return u.connection.Close()
}
