// internal/bus/bus_test.go
package bus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/netpanel/internal/logger"
)

func TestScan_FindsAttachedDevices(t *testing.T) {
	sim := NewSim(0x3C, 0x68)
	rec := logger.NewRecorder()

	found := Scan(context.Background(), sim, ScanFirst, ScanLast, ProbeTimeout, rec)

	assert.Equal(t, []uint16{0x3C, 0x68}, found)
	assert.Equal(t, []string{"found device", "found device"}, rec.Messages(logger.InfoLevel))
}

func TestScan_EmptyBus(t *testing.T) {
	found := Scan(context.Background(), NewSim(), ScanFirst, ScanLast, ProbeTimeout, logger.NewRecorder())
	assert.Empty(t, found)
}

func TestScan_OutOfRangeIgnored(t *testing.T) {
	found := Scan(context.Background(), NewSim(0x03, 0x79, 0x08, 0x78), ScanFirst, ScanLast, ProbeTimeout, logger.NewRecorder())
	assert.Equal(t, []uint16{0x08, 0x78}, found)
}

func TestProbe_Timeout(t *testing.T) {
	sim := NewSim()
	release := make(chan struct{})
	defer close(release)
	sim.Attach(0x20, PeripheralFunc(func(w, r []byte) error {
		<-release
		return nil
	}))

	err := Probe(context.Background(), sim, 0x20, 10*time.Millisecond)
	require.ErrorIs(t, err, ErrProbeTimeout)
}

func TestProbe_DeviceError(t *testing.T) {
	sim := NewSim()
	nack := errors.New("nack")
	sim.Attach(0x20, PeripheralFunc(func(w, r []byte) error { return nack }))

	require.ErrorIs(t, Probe(context.Background(), sim, 0x20, ProbeTimeout), nack)
}

func TestSim_DetachAndClose(t *testing.T) {
	sim := NewSim(0x3C)
	require.NoError(t, sim.Tx(0x3C, []byte{0x00, 0xAF}, nil))

	sim.Detach(0x3C)
	require.Error(t, sim.Tx(0x3C, nil, make([]byte, 1)))

	sim.Attach(0x3C, Ack)
	require.NoError(t, sim.Close())
	require.Error(t, sim.Tx(0x3C, nil, make([]byte, 1)))
}

func TestOpen_Sim(t *testing.T) {
	b, err := Open(SimName, 0x3C)
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, "sim-i2c", b.String())
	require.NoError(t, Probe(context.Background(), b, 0x3C, ProbeTimeout))
}
