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

// Recoverer performs the network recovery action and describes its outcome.
type Recoverer interface {
	Restart(ctx context.Context, at time.Time) string
}

// ConnectionRecovery cycles a NetworkManager connection down and back up.
type ConnectionRecovery struct {
	runner      collectors.Runner
	nmcli       []string
	name        string
	settleDelay time.Duration
	errors      *logstore.ErrorLog
	log         *zap.SugaredLogger
}

// NewConnectionRecovery wires a recovery action from cfg.
func NewConnectionRecovery(cfg config.Config, runner collectors.Runner, errLog *logstore.ErrorLog, log *zap.SugaredLogger) *ConnectionRecovery {
	return &ConnectionRecovery{
		runner:      runner,
		nmcli:       cfg.NMCLICommand,
		name:        cfg.ConnectionName,
		settleDelay: cfg.SettleDelay,
		errors:      errLog,
		log:         log,
	}
}

// Restart records the failure in the error log, then brings the connection
// down, waits for the interface to settle and brings it up again. A failing
// step stops the sequence; nothing is retried. The returned text is stored in
// the ping field of the current sample.
func (c *ConnectionRecovery) Restart(ctx context.Context, at time.Time) string {
	ts := FormatTimestamp(at)
	c.log.Warnw("Connection error", "time", ts, "connection", c.name)
	if err := c.errors.Append(ts + " Connection error.\n"); err != nil {
		c.log.Errorw("Could not record connection error", "error", err)
	}

	if err := c.nmcliConnection(ctx, "down"); err != nil {
		return c.failed(err)
	}

	// Once the connection is down it has to come back, even during shutdown.
	upCtx := context.WithoutCancel(ctx)
	if c.settleDelay > 0 {
		t := time.NewTimer(c.settleDelay)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
		}
	}

	if err := c.nmcliConnection(upCtx, "up"); err != nil {
		return c.failed(err)
	}

	c.log.Infow("Connection restarted", "connection", c.name)
	return "Restarted connection: " + c.name
}

func (c *ConnectionRecovery) nmcliConnection(ctx context.Context, verb string) error {
	if _, err := collectors.RunCommand(ctx, c.runner, c.nmcli, "connection", verb, c.name); err != nil {
		return fmt.Errorf("connection %s %s: %w", verb, c.name, err)
	}
	return nil
}

func (c *ConnectionRecovery) failed(err error) string {
	c.log.Errorw("Connection restart failed", "connection", c.name, "error", err)
	return fmt.Sprintf("Error restarting connection: %v", err)
}
