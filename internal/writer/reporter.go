// internal/writer/reporter.go
package writer

import (
	"context"
	"errors"
	"time"

	"github.com/tamzrod/netpanel/internal/fetch"
	"github.com/tamzrod/netpanel/internal/logger"
	"github.com/tamzrod/netpanel/internal/status"
)

// ReporterConfig wires a Reporter.
// Ticks defaults to a 1 Hz ticker; tests inject their own channel.
type ReporterConfig struct {
	Writer StatusWriter
	Ticks  <-chan time.Time
	Logger logger.Logger
}

// Reporter owns the status tracker. It folds fetch results and a 1 Hz tick
// into snapshots and delivers every change through the writer.
type Reporter struct {
	w       StatusWriter
	ticks   <-chan time.Time
	tracker *status.Tracker
	log     logger.Logger
}

func NewReporter(cfg ReporterConfig) (*Reporter, error) {
	if cfg.Writer == nil {
		return nil, errors.New("writer: reporter requires a status writer")
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.GetLogger()
	}
	return &Reporter{
		w:       cfg.Writer,
		ticks:   cfg.Ticks,
		tracker: status.NewTracker(),
		log:     cfg.Logger.With("component", "status"),
	}, nil
}

// Snapshot returns the current tracked state.
func (r *Reporter) Snapshot() status.Snapshot { return r.tracker.Snapshot() }

// Run consumes results until ctx is done. A closed results channel only stops
// result handling; ticking goes on.
func (r *Reporter) Run(ctx context.Context, results <-chan fetch.Result) error {
	ticks := r.ticks
	if ticks == nil {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		ticks = t.C
	}

	// Full block write on start (identity re-assert).
	r.deliver(r.tracker.Snapshot(), "start")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case res, ok := <-results:
			if !ok {
				results = nil
				continue
			}
			if s, changed := r.tracker.Observe(res.Healthy(), res.Code()); changed {
				r.deliver(s, res.Outcome.String())
			}

		case <-ticks:
			// seconds_in_error moves on the tick only
			if s, changed := r.tracker.Tick(); changed {
				r.deliver(s, "tick")
			}
		}
	}
}

func (r *Reporter) deliver(s status.Snapshot, cause string) {
	if err := r.w.WriteStatus(s); err != nil {
		r.log.Warn("status write failed", "cause", cause, "error", err)
	}
}
