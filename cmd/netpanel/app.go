// cmd/netpanel/app.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"periph.io/x/conn/v3/i2c"

	"github.com/tamzrod/netpanel/internal/clock"
	"github.com/tamzrod/netpanel/internal/config"
	"github.com/tamzrod/netpanel/internal/fetch"
	"github.com/tamzrod/netpanel/internal/logger"
	"github.com/tamzrod/netpanel/internal/sequencer"
	"github.com/tamzrod/netpanel/internal/writer"
)

// resultBuffer bounds fetch results waiting for the status reporter.
const resultBuffer = 16

// appConfig carries the process-level collaborators.
// Zero-valued collaborators use the real implementations.
type appConfig struct {
	Config    *config.Config
	Bus       i2c.Bus
	Logger    logger.Logger
	Clock     clock.Clock
	Echo      io.Writer
	Transport fetch.Transport
}

// app owns the two independent loops and the optional status reporter.
// The loops share nothing; the reporter only reads the fetch result channel.
type app struct {
	log      logger.Logger
	loop     *fetch.Loop
	seq      *sequencer.Sequencer
	reporter *writer.Reporter
	results  chan fetch.Result

	fetchDone    chan error
	displayDone  chan error
	reporterDone chan error
}

func newApp(ac appConfig) (*app, error) {
	if ac.Config == nil {
		return nil, errors.New("netpanel: config required")
	}
	if ac.Logger == nil {
		ac.Logger = logger.GetLogger()
	}
	cfg := ac.Config

	loop, err := fetch.New(fetch.Config{
		Target: fetch.Target{
			Host:      cfg.Fetch.Host,
			Port:      cfg.Fetch.Port,
			Path:      cfg.Fetch.Path,
			UserAgent: cfg.Fetch.UserAgent,
		},
		Transport: ac.Transport,
		Clock:     ac.Clock,
		Echo:      ac.Echo,
		Logger:    ac.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch loop: %w", err)
	}

	seq, err := sequencer.New(sequencer.Config{
		Bus:    ac.Bus,
		Clock:  ac.Clock,
		Logger: ac.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("sequencer: %w", err)
	}

	a := &app{
		log:          ac.Logger,
		loop:         loop,
		seq:          seq,
		fetchDone:    make(chan error, 1),
		displayDone:  make(chan error, 1),
		reporterDone: make(chan error, 1),
	}

	// Status writer (optional)
	plan := writer.BuildStatusPlan(cfg.Status)
	if plan == nil {
		return a, nil
	}

	cli, err := writer.BuildEndpointClient(plan)
	if err != nil {
		return nil, fmt.Errorf("status client: %w", err)
	}
	sw, _ := writer.NewStatusWriter(plan, cli)

	rep, err := writer.NewReporter(writer.ReporterConfig{Writer: sw, Logger: ac.Logger})
	if err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("status reporter: %w", err)
	}

	a.reporter = rep
	a.results = make(chan fetch.Result, resultBuffer)
	return a, nil
}

// start launches every loop in its own goroutine. Each loop's exit error
// is logged and delivered on its done channel.
func (a *app) start(ctx context.Context) {
	go func() {
		err := a.seq.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			// the display task ends here; the fetch loop keeps running
			a.log.Warn("display task stopped", "error", err)
		}
		a.displayDone <- err
	}()

	if a.reporter != nil {
		go func() {
			a.reporterDone <- a.reporter.Run(ctx, a.results)
		}()
	}

	go func() {
		a.fetchDone <- a.loop.Run(ctx, a.results)
	}()
}
