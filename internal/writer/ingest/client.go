// internal/writer/ingest/client.go

// Package ingest implements the Raw Ingest v1 register push protocol.
//
// Every write is one TCP connection carrying one packet:
//
//	0-1  magic "RI"
//	2    version (0x01)
//	3    area
//	4-5  unit id
//	6-7  address
//	8-9  register count
//	10+  registers, big-endian
//
// The server answers with a single status byte.
package ingest

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"time"
)

const (
	magic     = "RI"
	versionV1 = 0x01
	headerLen = 10
)

// Status bytes returned by the server.
const (
	StatusOK       byte = 0x00
	StatusRejected byte = 0x01
)

// ErrRejected is returned when the server refuses a packet.
var ErrRejected = errors.New("writer ingest: rejected")

// Packet is one Raw Ingest v1 write.
type Packet struct {
	Area   byte
	UnitID uint8
	Addr   uint16
	Regs   []uint16
}

// MarshalBinary encodes the header and register payload.
func (p Packet) MarshalBinary() ([]byte, error) {
	if len(p.Regs) > 0xFFFF {
		return nil, fmt.Errorf("writer ingest: %d registers exceed one packet", len(p.Regs))
	}

	out := make([]byte, headerLen, headerLen+2*len(p.Regs))
	copy(out[0:2], magic)
	out[2] = versionV1
	out[3] = p.Area
	binary.BigEndian.PutUint16(out[4:6], uint16(p.UnitID))
	binary.BigEndian.PutUint16(out[6:8], p.Addr)
	binary.BigEndian.PutUint16(out[8:10], uint16(len(p.Regs)))

	for _, r := range p.Regs {
		out = binary.BigEndian.AppendUint16(out, r)
	}
	return out, nil
}

// EndpointClient is stateless: one packet, one connection.
type EndpointClient struct {
	endpoint string
	timeout  time.Duration
	dialer   net.Dialer
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("writer ingest: endpoint required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	return &EndpointClient{
		endpoint: cfg.Endpoint,
		timeout:  cfg.Timeout,
		dialer:   net.Dialer{Timeout: cfg.Timeout},
	}, nil
}

func (c *EndpointClient) Close() error { return nil }

func (c *EndpointClient) WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error {
	return c.Send(Packet{Area: area, UnitID: unitID, Addr: addr, Regs: regs})
}

// Send delivers p and waits for the status byte.
func (c *EndpointClient) Send(p Packet) error {
	pkt, err := p.MarshalBinary()
	if err != nil {
		return err
	}

	conn, err := c.dialer.Dial("tcp", c.endpoint)
	if err != nil {
		return fmt.Errorf("writer ingest: dial: %w", err)
	}
	defer conn.Close()

	// one deadline covers the whole exchange
	_ = conn.SetDeadline(time.Now().Add(c.timeout))

	if err := writeAll(conn, pkt); err != nil {
		return fmt.Errorf("writer ingest: write: %w", err)
	}

	var resp [1]byte
	if _, err := io.ReadFull(conn, resp[:]); err != nil {
		return fmt.Errorf("writer ingest: read status: %w", err)
	}

	switch resp[0] {
	case StatusOK:
		return nil
	case StatusRejected:
		return ErrRejected
	default:
		return fmt.Errorf("writer ingest: unknown status 0x%02x", resp[0])
	}
}

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}
