// internal/config/validate.go
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/tamzrod/netpanel/internal/logger"
	"github.com/tamzrod/netpanel/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// FETCH TARGET
	// ------------------------------------------------------------

	f := cfg.Fetch
	if f.Host == "" {
		return fmt.Errorf("fetch: host is required")
	}
	if strings.ContainsAny(f.Host, " \r\n/") {
		return fmt.Errorf("fetch: host %q contains invalid characters", f.Host)
	}
	if f.Port == "" {
		return fmt.Errorf("fetch: port is required")
	}
	// numeric ports are range-checked; service names are resolved at runtime
	if p, err := strconv.Atoi(f.Port); err == nil && (p < 1 || p > 65535) {
		return fmt.Errorf("fetch: port %d out of range", p)
	}
	if strings.ContainsAny(f.Path, " \r\n") {
		return fmt.Errorf("fetch: path %q contains invalid characters", f.Path)
	}
	if strings.ContainsAny(f.UserAgent, "\r\n") {
		return fmt.Errorf("fetch: user_agent contains a line break")
	}

	// ------------------------------------------------------------
	// STATUS BLOCK (OPT-IN)
	// ------------------------------------------------------------

	s := cfg.Status

	// device_name sanity (ASCII only)
	for i := 0; i < len(s.DeviceName); i++ {
		if s.DeviceName[i] > 0x7F {
			return fmt.Errorf("status: device_name must contain ASCII characters only")
		}
	}

	if s.Enabled() {
		if _, _, err := net.SplitHostPort(s.Endpoint); err != nil {
			return fmt.Errorf("status: endpoint %q: %w", s.Endpoint, err)
		}

		switch strings.ToLower(s.Protocol) {
		case ProtocolModbus, ProtocolIngest:
		default:
			return fmt.Errorf("status: unknown protocol %q", s.Protocol)
		}

		if s.TimeoutMs <= 0 {
			return fmt.Errorf("status: timeout_ms must be > 0")
		}

		// the whole block must be addressable
		if end := (int(s.Slot)+1)*status.SlotsPerDevice - 1; end > 0xFFFF {
			return fmt.Errorf("status: slot %d exceeds the register space", s.Slot)
		}
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "", logger.FormatJSON, logger.FormatConsole:
	default:
		return fmt.Errorf("log: unknown format %q", cfg.Log.Format)
	}

	return nil
}
