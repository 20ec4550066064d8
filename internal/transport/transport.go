// Package transport provides the two collaborators that turn a
// host/port pair into a live stream: a Resolver that maps names to
// endpoints and a Dialer that connects to one of them.  Nothing here
// knows what happens over the connection afterwards.
package transport

import (
	"context"
	"net"
	"net/netip"
	"syscall"
)

// Resolver maps a host and a port (number or service name) to the
// endpoints a connection can be made to, in preference order.
type Resolver interface {
	Resolve(ctx context.Context, host, port string) ([]Endpoint, error)
}

// Dialer opens outbound network connections.
type Dialer interface {
	// Dial establishes a connection to the given network address.
	Dial(ctx context.Context, network, address string) (net.Conn, error)

	// Close releases any long-lived resources held by the dialer.
	// Stateless dialers return nil.
	Close() error
}

// Endpoint is one connectable stream address.
type Endpoint struct {
	Addr netip.AddrPort
}

// Network returns the dial network for the endpoint's family.
func (e Endpoint) Network() string {
	if e.Addr.Addr().Is4() {
		return "tcp4"
	}
	return "tcp6"
}

// Family names the address family: "IPv4" or "IPv6".
func (e Endpoint) Family() string {
	if e.Addr.Addr().Is4() {
		return "IPv4"
	}
	return "IPv6"
}

// SocketType is always "TCP"; sessions only speak streams.
func (e Endpoint) SocketType() string { return "TCP" }

// Protocol returns the IP protocol number used for the socket.
func (e Endpoint) Protocol() int { return syscall.IPPROTO_TCP }

// String returns "ip:port", bracketing IPv6.
func (e Endpoint) String() string { return e.Addr.String() }
