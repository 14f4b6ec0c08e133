package monitor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gysosin/Pi_monitor/internal/collectors"
	"github.com/gysosin/Pi_monitor/internal/config"
	"github.com/gysosin/Pi_monitor/internal/logstore"
)

// Probes is the set of host measurements taken each cycle.
type Probes interface {
	Pinger
	CPUTemperature(ctx context.Context) collectors.Temperature
	LoadAverage(ctx context.Context) (float64, error)
	PowerStatus(ctx context.Context) collectors.PowerStatus
	NVMeTemperature(ctx context.Context) collectors.Temperature
}

// Recorder runs one sampling cycle and writes its line to the rolling log.
type Recorder struct {
	probes   Probes
	policy   Reachability
	recovery Recoverer
	store    *logstore.Rolling
	log      *zap.SugaredLogger

	// Now stamps each cycle. Defaults to time.Now.
	Now func() time.Time
}

// NewRecorder wires a recorder from cfg.
func NewRecorder(cfg config.Config, probes Probes, recovery Recoverer, log *zap.SugaredLogger) *Recorder {
	return &Recorder{
		probes: probes,
		policy: Reachability{
			Pinger:   probes,
			External: cfg.ExternalHost,
			Gateway:  cfg.GatewayHost,
		},
		recovery: recovery,
		store:    logstore.NewRolling(cfg.LogFile, cfg.MaxEntries),
		log:      log,
		Now:      time.Now,
	}
}

// Record takes every probe, runs recovery if the network looks down and
// prepends the rendered sample to the rolling log. Probe failures show up as
// absent values; a failing load-average read or log rewrite is returned.
func (r *Recorder) Record(ctx context.Context) (Sample, error) {
	s := Sample{Timestamp: r.Now()}

	s.CPUTemp = r.probes.CPUTemperature(ctx)
	load, err := r.probes.LoadAverage(ctx)
	if err != nil {
		return Sample{}, err
	}
	s.Load = load
	s.Power = r.probes.PowerStatus(ctx)
	s.NVMeTemp = r.probes.NVMeTemperature(ctx)

	s.Ping = PingOK
	if !r.policy.Healthy(ctx) {
		// Pings fail when the context is cancelled; that is not a network outage.
		if err := ctx.Err(); err != nil {
			return Sample{}, err
		}
		s.Ping = r.recovery.Restart(ctx, s.Timestamp)
	}

	if err := r.store.Prepend(s.String()); err != nil {
		return Sample{}, fmt.Errorf("write sample: %w", err)
	}
	return s, nil
}
