package main

import (
	"context"
	"log"
	"time"

	"github.com/kardianos/service"
	"go.uber.org/zap"

	"github.com/gysosin/Pi_monitor/internal/collectors"
	"github.com/gysosin/Pi_monitor/internal/config"
	"github.com/gysosin/Pi_monitor/internal/logger"
	"github.com/gysosin/Pi_monitor/internal/logstore"
	"github.com/gysosin/Pi_monitor/internal/monitor"
)

// stopTimeout bounds how long Stop waits for an in-flight cycle.
const stopTimeout = 30 * time.Second

// program implements service.Interface.
type program struct {
	cfg    config.Config
	log    *zap.SugaredLogger
	cancel context.CancelFunc
	done   chan struct{}
}

// Start is called when the service starts.
func (p *program) Start(s service.Service) error {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	// Run the monitor asynchronously.
	go p.run(ctx)
	return nil
}

func (p *program) run(ctx context.Context) {
	defer close(p.done)

	runner := collectors.ExecRunner{}
	host := collectors.NewHost(p.cfg, runner, p.log.Named(logger.ComponentCollectors))
	recovery := monitor.NewConnectionRecovery(p.cfg, runner,
		logstore.NewErrorLog(p.cfg.ErrorFile), p.log.Named(logger.ComponentRecovery))
	recorder := monitor.NewRecorder(p.cfg, host, recovery, p.log.Named(logger.ComponentRecorder))

	sched := monitor.NewScheduler(recorder, p.cfg.Interval, p.log.Named(logger.ComponentScheduler))
	_ = sched.Run(ctx)
}

// Stop is called when the service stops.
func (p *program) Stop(s service.Service) error {
	p.log.Infow("Service stopping")
	p.cancel()
	select {
	case <-p.done:
	case <-time.After(stopTimeout):
		p.log.Warnw("Monitor did not stop in time", "timeout", stopTimeout)
	}
	return nil
}

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl := logger.New(cfg.LogLevel, cfg.DiagnosticLog)
	defer func() { _ = zl.Sync() }()
	svcLog := zl.Sugar().Named(logger.ComponentService)

	svcConfig := &service.Config{
		Name:        "PiMonitorService",
		DisplayName: "Pi Monitor Service",
		Description: "Samples board temperature, load, power flags and reachability into a rolling log.",
		Dependencies: []string{
			"Wants=network-online.target",
			"After=network-online.target",
		},
	}

	prg := &program{cfg: cfg, log: zl.Sugar()}
	s, err := service.New(prg, svcConfig)
	if err != nil {
		svcLog.Fatalw("Cannot create service", "error", err)
	}

	svcLog.Infow("Starting monitor",
		"log_file", cfg.LogFile,
		"error_file", cfg.ErrorFile,
		"interactive", service.Interactive())
	if err := s.Run(); err != nil {
		svcLog.Fatalw("Service failed", "error", err)
	}
}
