// internal/fetch/transport.go
package fetch

import (
	"context"
	"errors"
	"net/netip"
	"time"
)

// ErrSocketAlloc is wrapped by Connect when the OS refused to create the
// underlying handle. The loop treats it as a socket allocation failure.
var ErrSocketAlloc = errors.New("socket allocation failed")

// Transport is the set of network primitives the loop drives.
// Every call to Socket must yield a fresh Socket.
type Transport interface {
	Resolve(ctx context.Context, host, port string) (netip.AddrPort, error)
	Socket(addr netip.AddrPort) (Socket, error)
}

// Socket is one connection handle, valid from a successful Connect until Close.
type Socket interface {
	Connect(ctx context.Context) error
	Write(p []byte) (int, error)
	SetReceiveTimeout(d time.Duration) error
	// Read follows io.Reader. The loop stops at the first read returning n <= 0.
	Read(p []byte) (int, error)
	Close() error
}
