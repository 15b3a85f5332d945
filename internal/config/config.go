// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Fetch   FetchConfig   `yaml:"-"`
	Display DisplayConfig `yaml:"display"`
	Status  StatusConfig  `yaml:"status"`
	Log     LogConfig     `yaml:"log"`
}

// ---- FETCH ----

// FetchConfig names the resource fetched every cycle.
// It is compiled in and cannot be set from a file.
// Retry delays, receive timeout and buffer size are not configurable.
type FetchConfig struct {
	Host      string `yaml:"host"`
	Port      string `yaml:"port"`
	Path      string `yaml:"path"`
	UserAgent string `yaml:"user_agent"`
}

// ---- DISPLAY ----

// DisplayConfig selects the I2C bus. Empty means the first bus the host
// registers; "sim" selects the in-process simulated bus.
// Panel geometry and address are not configurable.
type DisplayConfig struct {
	Bus string `yaml:"bus"`
}

// ---- STATUS ----

// StatusConfig is the optional fetch-health status block (opt-in).
// An empty endpoint disables it.
type StatusConfig struct {
	Endpoint   string `yaml:"endpoint"`
	Protocol   string `yaml:"protocol"` // modbus | ingest
	UnitID     uint8  `yaml:"unit_id"`
	Slot       uint16 `yaml:"slot"`
	DeviceName string `yaml:"device_name"`
	TimeoutMs  int    `yaml:"timeout_ms"`
}

// Enabled reports whether the status block is configured.
func (s StatusConfig) Enabled() bool { return s.Endpoint != "" }

// ---- LOG ----

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json | console
}

const (
	ProtocolModbus = "modbus"
	ProtocolIngest = "ingest"
)

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Fetch: FetchConfig{
			Host: "httpbin.org",
			Port: "80",
			Path: "/get",
		},
		Status: StatusConfig{
			Protocol:  ProtocolModbus,
			TimeoutMs: 1000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads a YAML file over the defaults, then validates and normalizes it.
// The file may set display, status and log; any other key is rejected.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	Normalize(&cfg)
	return &cfg, nil
}
