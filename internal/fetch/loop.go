// internal/fetch/loop.go
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/tamzrod/netpanel/internal/clock"
	"github.com/tamzrod/netpanel/internal/countdown"
	"github.com/tamzrod/netpanel/internal/logger"
)

const (
	// ReceiveTimeout bounds every read of the receive phase.
	ReceiveTimeout = 5 * time.Second
	// RecvBufferSize is the size of the receive buffer.
	RecvBufferSize = 64
)

// completionCountdown is the visible pause after a completed stream.
var completionCountdown = countdown.Countdown{From: 10, To: 0, Interval: time.Second}

var failureMessages = map[Outcome]string{
	DNSFailure:              "DNS lookup failed",
	SocketAllocationFailure: "failed to allocate socket",
	ConnectFailure:          "socket connect failed",
	RequestSendFailure:      "socket send failed",
	TimeoutConfigFailure:    "failed to set socket receiving timeout",
}

// Config is the runtime config of the fetch loop.
// Zero-valued collaborators fall back to the real network, wall clock,
// stdout echo and the default logger.
type Config struct {
	Target    Target
	Transport Transport
	Clock     clock.Clock
	Echo      io.Writer
	Logger    logger.Logger
}

// Loop runs fetch cycles back to back, forever.
type Loop struct {
	target  Target
	request []byte
	tr      Transport
	clk     clock.Clock
	echo    io.Writer
	log     logger.Logger
	buf     []byte

	counts [TimeoutConfigFailure + 1]*xsync.Counter
}

// New creates a fetch loop with an immutable target.
func New(cfg Config) (*Loop, error) {
	if err := cfg.Target.validate(); err != nil {
		return nil, err
	}
	if cfg.Transport == nil {
		cfg.Transport = NewNetTransport()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.Real{}
	}
	if cfg.Echo == nil {
		cfg.Echo = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.GetLogger()
	}

	l := &Loop{
		target:  cfg.Target,
		request: BuildRequest(cfg.Target),
		tr:      cfg.Transport,
		clk:     cfg.Clock,
		echo:    cfg.Echo,
		log:     cfg.Logger.With("component", "http_get"),
		buf:     make([]byte, RecvBufferSize),
	}
	for i := range l.counts {
		l.counts[i] = xsync.NewCounter()
	}
	return l, nil
}

// Count returns how many attempts ended with o.
func (l *Loop) Count(o Outcome) int64 {
	if int(o) >= len(l.counts) {
		return 0
	}
	return l.counts[o].Value()
}

// Run drives fetch cycles until ctx is done. In production ctx is never cancelled.
// Each Result is offered to out without blocking; a nil out disables publishing.
func (l *Loop) Run(ctx context.Context, out chan<- Result) error {
	for {
		res := l.Attempt(ctx)
		if err := ctx.Err(); err != nil {
			return err
		}

		l.counts[res.Outcome].Inc()
		l.publish(out, res)

		if err := l.pause(ctx, res); err != nil {
			return err
		}
	}
}

func (l *Loop) publish(out chan<- Result, res Result) {
	if out == nil {
		return
	}
	select {
	case out <- res:
	default:
		l.log.Debug("result dropped, consumer busy", "outcome", res.Outcome)
	}
}

// pause applies the cooldown that follows res.
func (l *Loop) pause(ctx context.Context, res Result) error {
	if res.Outcome.Failed() {
		return l.clk.Sleep(ctx, res.Outcome.Cooldown())
	}

	l.log.Info("HTTP GET OK")
	err := completionCountdown.Run(ctx, l.clk, func(n int) {
		l.log.Info("countdown", "remaining", n)
	})
	if err != nil {
		return err
	}
	l.log.Info("Starting again!")
	return nil
}

// Attempt performs exactly one fetch cycle and returns its outcome.
// It never sleeps; cooldowns belong to Run.
func (l *Loop) Attempt(ctx context.Context) Result {
	res := Result{ID: uuid.NewString(), At: l.clk.Now()}
	log := l.log.With("attempt", res.ID)

	var sock Socket
	state := Resolving

	for {
		log.Debug("fetch state", "state", state)

		switch state {
		case Resolving:
			addr, err := l.tr.Resolve(ctx, l.target.Host, l.target.Port)
			if err != nil {
				return l.fail(log, res, DNSFailure, nil, fmt.Errorf("resolve %s:%s: %w", l.target.Host, l.target.Port, err))
			}
			res.Addr = addr
			log.Info("DNS lookup succeeded", "ip", addr.Addr().String())
			state = Connecting

		case Connecting:
			s, err := l.tr.Socket(res.Addr)
			if err != nil {
				return l.fail(log, res, SocketAllocationFailure, nil, fmt.Errorf("socket: %w", err))
			}
			log.Info("allocated socket")

			if err := s.Connect(ctx); err != nil {
				if errors.Is(err, ErrSocketAlloc) {
					return l.fail(log, res, SocketAllocationFailure, nil, fmt.Errorf("socket: %w", err))
				}
				return l.fail(log, res, ConnectFailure, s, fmt.Errorf("connect %s: %w", res.Addr, err))
			}
			sock = s
			log.Info("connected", "addr", res.Addr.String())
			state = Sending

		case Sending:
			if err := writeAll(sock, l.request); err != nil {
				return l.fail(log, res, RequestSendFailure, sock, fmt.Errorf("send: %w", err))
			}
			log.Info("socket send success", "bytes", len(l.request))
			state = Configuring

		case Configuring:
			if err := sock.SetReceiveTimeout(ReceiveTimeout); err != nil {
				return l.fail(log, res, TimeoutConfigFailure, sock, fmt.Errorf("receive timeout: %w", err))
			}
			log.Info("set socket receiving timeout success", "timeout", ReceiveTimeout)
			state = Receiving

		case Receiving:
			l.receive(log, sock, &res)
			state = Completing

		case Completing:
			log.Info("done reading from socket",
				"last_read", res.LastRead,
				"error", res.LastReadErr,
				"bytes", res.BytesReceived,
			)
			l.release(log, sock)
			res.Outcome = StreamComplete
			return res
		}
	}
}

// receive echoes every byte until a read yields n <= 0.
// End of stream and read errors (timeouts included) end the phase the same way.
func (l *Loop) receive(log logger.Logger, sock Socket, res *Result) {
	for {
		n, err := sock.Read(l.buf)
		if n <= 0 {
			res.LastRead = n
			res.LastReadErr = err
			return
		}
		_, _ = l.echo.Write(l.buf[:n])
		res.BytesReceived += n
		log.Debug("received", "bytes", n, "total", res.BytesReceived)
	}
}

func (l *Loop) fail(log logger.Logger, res Result, o Outcome, sock Socket, err error) Result {
	l.release(log, sock)
	res.Outcome = o
	res.Err = err
	log.Error(failureMessages[o],
		"outcome", o,
		"error", err,
		"retry_in", o.Cooldown(),
	)
	return res
}

func (l *Loop) release(log logger.Logger, sock Socket) {
	if sock == nil {
		return
	}
	if err := sock.Close(); err != nil {
		log.Debug("socket close failed", "error", err)
	}
}

// writeAll writes b completely or fails.
func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		b = b[n:]
	}
	return nil
}
