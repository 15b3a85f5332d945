// internal/fetch/net_transport.go
package fetch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"os"
	"time"

	"golang.org/x/net/idna"
)

// NetTransport implements Transport over the host TCP/IP stack, IPv4 only.
type NetTransport struct {
	Resolver *net.Resolver
	Dialer   net.Dialer
}

// NewNetTransport returns a transport using the default resolver.
func NewNetTransport() *NetTransport {
	return &NetTransport{Resolver: net.DefaultResolver}
}

// Resolve normalises host to its ASCII form and looks up the first IPv4 address.
// Nothing is cached between calls.
func (t *NetTransport) Resolve(ctx context.Context, host, port string) (netip.AddrPort, error) {
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("idna %q: %w", host, err)
	}

	r := t.Resolver
	if r == nil {
		r = net.DefaultResolver
	}

	p, err := r.LookupPort(ctx, "tcp", port)
	if err != nil {
		return netip.AddrPort{}, err
	}
	if p <= 0 || p > 0xFFFF {
		return netip.AddrPort{}, fmt.Errorf("port %d out of range", p)
	}

	ips, err := r.LookupNetIP(ctx, "ip4", ascii)
	if err != nil {
		return netip.AddrPort{}, err
	}
	if len(ips) == 0 {
		return netip.AddrPort{}, fmt.Errorf("no ipv4 address for %s", ascii)
	}

	return netip.AddrPortFrom(ips[0].Unmap(), uint16(p)), nil
}

// Socket prepares an unconnected handle for addr. Only IPv4 stream sockets exist.
// The OS descriptor is created by Connect, which reports a refusal as ErrSocketAlloc.
func (t *NetTransport) Socket(addr netip.AddrPort) (Socket, error) {
	if !addr.IsValid() {
		return nil, errors.New("invalid address")
	}
	if !addr.Addr().Is4() {
		return nil, fmt.Errorf("address family of %s not supported", addr.Addr())
	}
	return &tcpSocket{dialer: t.Dialer, addr: addr}, nil
}

type tcpSocket struct {
	dialer  net.Dialer
	addr    netip.AddrPort
	conn    net.Conn
	timeout time.Duration
	closed  bool
}

var errNotConnected = errors.New("socket not connected")

func (s *tcpSocket) Connect(ctx context.Context) error {
	if s.closed {
		return net.ErrClosed
	}
	if s.conn != nil {
		return errors.New("socket already connected")
	}
	conn, err := s.dialer.DialContext(ctx, "tcp4", s.addr.String())
	if err != nil {
		return classifyDialErr(err)
	}
	s.conn = conn
	return nil
}

// classifyDialErr marks failures of the socket(2) call made inside the dialer.
func classifyDialErr(err error) error {
	var se *os.SyscallError
	if errors.As(err, &se) && se.Syscall == "socket" {
		return fmt.Errorf("%w: %w", ErrSocketAlloc, err)
	}
	return err
}

func (s *tcpSocket) Write(p []byte) (int, error) {
	if s.conn == nil {
		return 0, errNotConnected
	}
	return s.conn.Write(p)
}

// SetReceiveTimeout arms a per-read timeout. Each Read re-arms the deadline.
func (s *tcpSocket) SetReceiveTimeout(d time.Duration) error {
	if s.conn == nil {
		return errNotConnected
	}
	if d <= 0 {
		return fmt.Errorf("receive timeout %v must be > 0", d)
	}
	if err := s.conn.SetReadDeadline(time.Now().Add(d)); err != nil {
		return err
	}
	s.timeout = d
	return nil
}

func (s *tcpSocket) Read(p []byte) (int, error) {
	if s.conn == nil {
		return 0, errNotConnected
	}
	if s.timeout > 0 {
		if err := s.conn.SetReadDeadline(time.Now().Add(s.timeout)); err != nil {
			return 0, err
		}
	}
	return s.conn.Read(p)
}

func (s *tcpSocket) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
