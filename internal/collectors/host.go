package collectors

import (
	"time"

	"go.uber.org/zap"

	"github.com/gysosin/Pi_monitor/internal/config"
)

// Host gathers the single-board computer probes. Every probe except LoadAverage
// swallows its failures and reports an absent value instead.
type Host struct {
	Runner       Runner
	ThermalPath  string
	PowerCommand []string
	NVMeCommand  []string
	PingDeadline time.Duration
	Log          *zap.SugaredLogger
}

// NewHost wires a Host from cfg.
func NewHost(cfg config.Config, runner Runner, log *zap.SugaredLogger) *Host {
	if runner == nil {
		runner = ExecRunner{}
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Host{
		Runner:       runner,
		ThermalPath:  cfg.ThermalPath,
		PowerCommand: cfg.PowerCommand,
		NVMeCommand:  cfg.NVMeCommand,
		PingDeadline: cfg.PingDeadline,
		Log:          log,
	}
}
