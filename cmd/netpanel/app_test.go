// cmd/netpanel/app_test.go
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/netpanel/internal/clock"
	"github.com/tamzrod/netpanel/internal/config"
	"github.com/tamzrod/netpanel/internal/logger"
	"github.com/tamzrod/netpanel/internal/sequencer"
	"github.com/tamzrod/netpanel/internal/status"
)

// serveHTTP answers every connection with body after the request headers.
func serveHTTP(t *testing.T, body string) (host, port string) {
	t.Helper()

	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				r := bufio.NewReader(c)
				for {
					line, err := r.ReadString('\n')
					if err != nil || line == "\r\n" {
						break
					}
				}
				_, _ = io.WriteString(c, "HTTP/1.0 200 OK\r\n\r\n"+body)
			}(conn)
		}
	}()

	addr := ln.Addr().(*net.TCPAddr)
	return "127.0.0.1", strconv.Itoa(addr.Port)
}

type ingestWrite struct {
	addr uint16
	regs []uint16
}

// serveIngest acknowledges every Raw Ingest v1 packet and reports it.
func serveIngest(t *testing.T) (string, <-chan ingestWrite) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	writes := make(chan ingestWrite, 64)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			var hdr [10]byte
			if _, err := io.ReadFull(conn, hdr[:]); err != nil {
				conn.Close()
				continue
			}
			payload := make([]byte, 2*int(binary.BigEndian.Uint16(hdr[8:10])))
			if _, err := io.ReadFull(conn, payload); err != nil {
				conn.Close()
				continue
			}
			w := ingestWrite{addr: binary.BigEndian.Uint16(hdr[6:8])}
			for i := 0; i < len(payload); i += 2 {
				w.regs = append(w.regs, binary.BigEndian.Uint16(payload[i:]))
			}
			_, _ = conn.Write([]byte{0x00})
			conn.Close()
			writes <- w
		}
	}()

	return ln.Addr().String(), writes
}

func testConfig(host, port string) *config.Config {
	cfg := config.Default()
	cfg.Fetch.Host = host
	cfg.Fetch.Port = port
	return &cfg
}

func TestNewApp_RequiresConfig(t *testing.T) {
	_, err := newApp(appConfig{})
	assert.Error(t, err)
}

func TestNewApp_InvalidTarget(t *testing.T) {
	cfg := testConfig("127.0.0.1", "80")
	cfg.Fetch.Path = ""
	_, err := newApp(appConfig{Config: cfg, Logger: logger.NewRecorder()})
	assert.Error(t, err)
}

func TestNewApp_StatusDisabledByDefault(t *testing.T) {
	a, err := newApp(appConfig{Config: testConfig("127.0.0.1", "80"), Logger: logger.NewRecorder()})
	require.NoError(t, err)
	assert.Nil(t, a.reporter)
	assert.Nil(t, a.results)
}

func TestApp_NilBusLeavesFetchRunning(t *testing.T) {
	host, port := serveHTTP(t, "hello")
	rec := logger.NewRecorder()
	rec.SetLevel(logger.InfoLevel)
	clk := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	var echo bytes.Buffer

	a, err := newApp(appConfig{
		Config: testConfig(host, port),
		Logger: rec,
		Clock:  clk,
		Echo:   &echo,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// one completed stream: eleven countdown pauses
	sleeps := 0
	clk.OnSleep = func(time.Duration) {
		sleeps++
		if sleeps == 11 {
			cancel()
		}
	}

	a.start(ctx)

	select {
	case err := <-a.displayDone:
		assert.ErrorIs(t, err, sequencer.ErrNoBus)
	case <-time.After(5 * time.Second):
		t.Fatal("display task did not stop")
	}

	select {
	case err := <-a.fetchDone:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(10 * time.Second):
		t.Fatal("fetch loop did not finish its cycle")
	}

	assert.Equal(t, "HTTP/1.0 200 OK\r\n\r\nhello", echo.String())
	assert.Equal(t, []string{"I2C bus handle is nil"}, rec.Messages(logger.ErrorLevel))
	assert.Contains(t, rec.Messages(logger.InfoLevel), "HTTP GET OK")
}

func TestApp_StatusReporterFollowsFetch(t *testing.T) {
	host, port := serveHTTP(t, "ok")
	endpoint, writes := serveIngest(t)

	cfg := testConfig(host, port)
	cfg.Status.Endpoint = endpoint
	cfg.Status.Protocol = config.ProtocolIngest
	cfg.Status.DeviceName = "panel"

	clk := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	a, err := newApp(appConfig{
		Config: cfg,
		Logger: logger.NewRecorder(),
		Clock:  clk,
		Echo:   io.Discard,
	})
	require.NoError(t, err)
	require.NotNil(t, a.reporter)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	healthy := make(chan struct{})
	go func() {
		for w := range writes {
			if w.addr == status.SlotHealthCode && len(w.regs) == 1 && w.regs[0] == status.HealthOK {
				close(healthy)
				return
			}
		}
	}()

	// hold the fetch loop in its first pause until the reporter caught up
	clk.OnSleep = func(time.Duration) {
		select {
		case <-healthy:
		case <-time.After(5 * time.Second):
		}
		cancel()
	}

	a.start(ctx)

	select {
	case <-a.reporterDone:
	case <-time.After(10 * time.Second):
		t.Fatal("reporter did not stop")
	}

	select {
	case <-healthy:
	default:
		t.Fatal("status block never reported a healthy fetch")
	}
}
