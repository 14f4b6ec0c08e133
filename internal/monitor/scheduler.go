package monitor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Cycler runs one sampling cycle.
type Cycler interface {
	Record(ctx context.Context) (Sample, error)
}

// Scheduler repeats a cycle, sleeping a fixed interval after each one. The
// period therefore drifts by the cycle's own run time; this is not corrected.
type Scheduler struct {
	cycler   Cycler
	interval time.Duration
	log      *zap.SugaredLogger
}

// NewScheduler returns a scheduler for c.
func NewScheduler(c Cycler, interval time.Duration, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{cycler: c, interval: interval, log: log}
}

// Run blocks until ctx is cancelled. A failed cycle is logged and the next
// one runs on schedule.
func (s *Scheduler) Run(ctx context.Context) error {
	s.log.Infow("Monitor started", "interval", s.interval)
	for {
		if ctx.Err() != nil {
			break
		}

		s.runCycle(ctx)

		t := time.NewTimer(s.interval)
		select {
		case <-ctx.Done():
			t.Stop()
		case <-t.C:
		}
	}
	s.log.Infow("Monitor stopped")
	return nil
}

func (s *Scheduler) runCycle(ctx context.Context) {
	log := s.log.With("cycle", uuid.NewString())
	start := time.Now()

	sample, err := s.cycler.Record(ctx)
	switch {
	case err == nil:
		log.Infow("Sample recorded",
			"ping", sample.Ping,
			"load", sample.Load,
			"took", time.Since(start))
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		log.Infow("Cycle interrupted by shutdown")
	default:
		log.Errorw("Cycle failed", "error", err)
	}
}
