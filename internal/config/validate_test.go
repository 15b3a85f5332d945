// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"
)

// helper to build a valid config with status enabled
func withStatus(endpoint, protocol string, slot uint16) *Config {
	cfg := Default()
	cfg.Status.Endpoint = endpoint
	cfg.Status.Protocol = protocol
	cfg.Status.Slot = slot
	return &cfg
}

// ---- tests ----

func TestValidate_Defaults(t *testing.T) {
	cfg := Default()
	if err := Validate(&cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Status.Enabled() {
		t.Fatalf("status must be disabled by default")
	}
}

func TestValidate_Nil(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestValidate_FetchTarget(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
		ok   bool
	}{
		{"missing host", func(c *Config) { c.Fetch.Host = "" }, false},
		{"host with slash", func(c *Config) { c.Fetch.Host = "example.com/x" }, false},
		{"missing port", func(c *Config) { c.Fetch.Port = "" }, false},
		{"port zero", func(c *Config) { c.Fetch.Port = "0" }, false},
		{"port too large", func(c *Config) { c.Fetch.Port = "70000" }, false},
		{"service name port", func(c *Config) { c.Fetch.Port = "http" }, true},
		{"path with space", func(c *Config) { c.Fetch.Path = "/a b" }, false},
		{"user agent with CRLF", func(c *Config) { c.Fetch.UserAgent = "x\r\nHost: evil" }, false},
		{"idn host", func(c *Config) { c.Fetch.Host = "bücher.example" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mod(&cfg)
			err := Validate(&cfg)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestValidate_StatusEnabled(t *testing.T) {
	for _, proto := range []string{"modbus", "ingest", "MODBUS"} {
		if err := Validate(withStatus("127.0.0.1:502", proto, 0)); err != nil {
			t.Fatalf("protocol %s: unexpected error: %v", proto, err)
		}
	}
}

func TestValidate_StatusUnknownProtocol(t *testing.T) {
	err := Validate(withStatus("127.0.0.1:502", "mqtt", 0))
	if err == nil || !strings.Contains(err.Error(), "unknown protocol") {
		t.Fatalf("expected unknown protocol error, got %v", err)
	}
}

func TestValidate_StatusEndpointWithoutPort(t *testing.T) {
	if err := Validate(withStatus("127.0.0.1", "modbus", 0)); err == nil {
		t.Fatalf("expected endpoint error")
	}
}

func TestValidate_StatusSlotOutOfSpace(t *testing.T) {
	// 3276 * 20 + 19 = 65539
	if err := Validate(withStatus("127.0.0.1:502", "modbus", 3276)); err == nil {
		t.Fatalf("expected slot error")
	}
	// 3275 * 20 + 19 = 65519
	if err := Validate(withStatus("127.0.0.1:502", "modbus", 3275)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_StatusTimeout(t *testing.T) {
	cfg := withStatus("127.0.0.1:502", "modbus", 0)
	cfg.Status.TimeoutMs = 0
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected timeout error")
	}
}

func TestValidate_DeviceNameASCII(t *testing.T) {
	cfg := withStatus("127.0.0.1:502", "modbus", 0)
	cfg.Status.DeviceName = "panel-é"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected ASCII error")
	}
}

func TestValidate_Log(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "verbose"
	if err := Validate(&cfg); err == nil {
		t.Fatalf("expected level error")
	}

	cfg = Default()
	cfg.Log.Format = "xml"
	if err := Validate(&cfg); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	cfg := withStatus("127.0.0.1:502", "INGEST", 1)
	cfg.Fetch.Path = "get"
	cfg.Status.DeviceName = "a-very-long-device-name"

	before := *cfg
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != before {
		t.Fatalf("Validate mutated config")
	}
}
