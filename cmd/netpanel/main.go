// cmd/netpanel/main.go

// Command netpanel runs the panel controller daemon.
//
// Two duties run side by side, forever: a fetch loop that GETs one resource
// over TCP and echoes it to stdout, and a display sequencer that plays a fixed
// demonstration on a 128x64 SSD1306 panel over I2C.
//
// Usage:
//
//	netpanel [--config path] [--log-level level]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
