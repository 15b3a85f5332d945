// internal/bus/sim.go
package bus

import (
	"fmt"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Peripheral answers transactions addressed to it on a simulated bus.
type Peripheral interface {
	Tx(w, r []byte) error
}

// PeripheralFunc adapts a function to Peripheral.
type PeripheralFunc func(w, r []byte) error

func (f PeripheralFunc) Tx(w, r []byte) error { return f(w, r) }

// Ack is a peripheral that acknowledges everything and reads back zeros.
var Ack Peripheral = PeripheralFunc(func(w, r []byte) error {
	for i := range r {
		r[i] = 0
	}
	return nil
})

// Sim is an in-process I2C bus for hosts without the panel attached.
type Sim struct {
	devices *xsync.MapOf[uint16, Peripheral]
	speed   atomic.Int64
	closed  atomic.Bool
}

var _ i2c.BusCloser = (*Sim)(nil)

// NewSim returns a simulated bus with an acknowledging device at each addr.
func NewSim(addrs ...uint16) *Sim {
	s := &Sim{devices: xsync.NewMapOf[uint16, Peripheral]()}
	for _, a := range addrs {
		s.Attach(a, Ack)
	}
	return s
}

// Attach places p at addr, replacing any previous device.
func (s *Sim) Attach(addr uint16, p Peripheral) {
	s.devices.Store(addr, p)
}

// Detach removes the device at addr.
func (s *Sim) Detach(addr uint16) {
	s.devices.Delete(addr)
}

func (s *Sim) String() string { return "sim-i2c" }

func (s *Sim) Tx(addr uint16, w, r []byte) error {
	if s.closed.Load() {
		return fmt.Errorf("%s: closed", s)
	}
	p, ok := s.devices.Load(addr)
	if !ok {
		return fmt.Errorf("%s: no ack from 0x%02X", s, addr)
	}
	return p.Tx(w, r)
}

func (s *Sim) SetSpeed(f physic.Frequency) error {
	s.speed.Store(int64(f))
	return nil
}

func (s *Sim) Close() error {
	s.closed.Store(true)
	return nil
}
