// cmd/netpanel/root.go
package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/i2c"

	"github.com/tamzrod/netpanel/internal/bus"
	"github.com/tamzrod/netpanel/internal/config"
	"github.com/tamzrod/netpanel/internal/display"
	"github.com/tamzrod/netpanel/internal/logger"
)

// Version is set at build time via ldflags.
var Version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "netpanel",
		Short: "Fetch a resource over TCP and drive an SSD1306 panel, forever",
		Long: `netpanel runs two independent loops until the process is killed.
The fetch loop GETs one resource and echoes the response to stdout,
retrying every failure after a fixed delay.
The display loop plays a fixed demonstration on a 128x64 SSD1306 panel.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon(opts)
		},
	}

	cmd.SetVersionTemplate("netpanel version {{.Version}}\n")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file (defaults are compiled in)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		if _, err := logger.ParseLevel(opts.logLevel); err != nil {
			return nil, err
		}
		cfg.Log.Level = opts.logLevel
	}
	return cfg, nil
}

func newLogger(c config.LogConfig) logger.Logger {
	level, _ := logger.ParseLevel(c.Level)
	return logger.NewSlog(level, c.Format)
}

// openBus never fails the process: a missing bus reaches the sequencer as nil.
func openBus(name string, log logger.Logger) i2c.Bus {
	b, err := bus.Open(name, display.Address)
	if err != nil {
		log.Error("i2c bus open failed", "bus", name, "error", err)
		return nil
	}
	log.Info("i2c bus opened", "bus", b.String())
	return b
}

func runDaemon(opts *rootOptions) error {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := loadConfig(opts)
	if err != nil {
		logger.Fatal("config load failed", "error", err)
	}

	log := newLogger(cfg.Log)
	logger.SetDefault(log)

	// --------------------
	// Build + start both loops
	// --------------------

	a, err := newApp(appConfig{
		Config: cfg,
		Bus:    openBus(cfg.Display.Bus, log),
		Logger: log,
	})
	if err != nil {
		log.Fatal("startup failed", "error", err)
	}

	// Neither loop is ever cancelled in production.
	a.start(context.Background())

	// --------------------
	// Block forever (daemon-safe, no deadlock)
	// --------------------
	for {
		time.Sleep(time.Hour)
	}
}
