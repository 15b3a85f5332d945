// cmd/netpanel/root_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/netpanel/internal/bus"
	"github.com/tamzrod/netpanel/internal/logger"
)

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	assert.NotNil(t, cmd.Flags().Lookup("config"))
	assert.NotNil(t, cmd.Flags().Lookup("log-level"))
	assert.Equal(t, "c", cmd.Flags().Lookup("config").Shorthand)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(os.Stderr)
	cmd.SetErr(os.Stderr)
	assert.Error(t, cmd.Execute())
}

func TestLoadConfig_LogLevelOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "netpanel.yaml")
	require.NoError(t, os.WriteFile(p, []byte("log:\n  level: warn\n"), 0o600))

	cfg, err := loadConfig(&rootOptions{configPath: p})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)

	cfg, err = loadConfig(&rootOptions{configPath: p, logLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = loadConfig(&rootOptions{logLevel: "loud"})
	assert.Error(t, err)
}

func TestOpenBus(t *testing.T) {
	rec := logger.NewRecorder()

	b := openBus(bus.SimName, rec)
	require.NotNil(t, b)
	assert.Equal(t, "sim-i2c", b.String())

	assert.Equal(t, []string{"i2c bus opened"}, rec.Messages(logger.InfoLevel))
}
