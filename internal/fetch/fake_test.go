// internal/fetch/fake_test.go
package fetch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/netip"
	"sync"
	"time"
)

// script describes how one fetch attempt behaves.
type script struct {
	resolveErr error
	socketErr  error
	connectErr error
	writeErr   error
	timeoutErr error
	payload    string
	readErr    error // returned with the terminating zero-length read
}

type fakeTransport struct {
	mu       sync.Mutex
	scripts  []script
	resolves int
	sockets  []*fakeSocket
}

var fakeAddr = netip.MustParseAddrPort("203.0.113.7:80")

func (f *fakeTransport) current() script {
	i := f.resolves - 1
	if i >= len(f.scripts) {
		i = len(f.scripts) - 1
	}
	return f.scripts[i]
}

func (f *fakeTransport) Resolve(ctx context.Context, host, port string) (netip.AddrPort, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolves++
	if err := f.current().resolveErr; err != nil {
		return netip.AddrPort{}, err
	}
	return fakeAddr, nil
}

func (f *fakeTransport) Socket(addr netip.AddrPort) (Socket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sc := f.current()
	if sc.socketErr != nil {
		return nil, sc.socketErr
	}
	s := &fakeSocket{sc: sc, pending: []byte(sc.payload)}
	f.sockets = append(f.sockets, s)
	return s, nil
}

func (f *fakeTransport) Resolves() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resolves
}

type fakeSocket struct {
	sc        script
	pending   []byte
	written   bytes.Buffer
	timeout   time.Duration
	reads     []int
	closed    int
	connected bool
}

func (s *fakeSocket) Connect(ctx context.Context) error {
	if s.sc.connectErr != nil {
		return s.sc.connectErr
	}
	s.connected = true
	return nil
}

// Write accepts at most 16 bytes per call to exercise partial writes.
func (s *fakeSocket) Write(p []byte) (int, error) {
	if s.sc.writeErr != nil {
		return 0, s.sc.writeErr
	}
	if len(p) > 16 {
		p = p[:16]
	}
	return s.written.Write(p)
}

func (s *fakeSocket) SetReceiveTimeout(d time.Duration) error {
	if s.sc.timeoutErr != nil {
		return s.sc.timeoutErr
	}
	s.timeout = d
	return nil
}

func (s *fakeSocket) Read(p []byte) (int, error) {
	if len(s.pending) == 0 {
		s.reads = append(s.reads, 0)
		if s.sc.readErr != nil {
			return 0, s.sc.readErr
		}
		return 0, io.EOF
	}
	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	s.reads = append(s.reads, n)
	return n, nil
}

func (s *fakeSocket) Close() error {
	s.closed++
	return nil
}

var errBoom = errors.New("boom")
