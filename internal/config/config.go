package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds every fixed setting of the monitor. Values come from Default();
// tests build their own to point at temporary files and fake hosts.
type Config struct {
	LogFile    string
	ErrorFile  string
	MaxEntries int // 3 hours at 1-minute intervals

	Interval time.Duration

	ThermalPath string

	ExternalHost string
	GatewayHost  string
	PingDeadline time.Duration

	ConnectionName string
	SettleDelay    time.Duration

	// Full command lines, program first.
	PowerCommand []string
	NVMeCommand  []string
	NMCLICommand []string

	// DiagnosticLog receives the structured process log in addition to stderr.
	// Empty disables the file sink.
	DiagnosticLog string
	LogLevel      string
}

// Default returns the production settings.
func Default() Config {
	return Config{
		LogFile:        "/home/pi/system_monitor.log",
		ErrorFile:      "/home/pi/system_monitor_error.log",
		MaxEntries:     180,
		Interval:       60 * time.Second,
		ThermalPath:    "/sys/class/thermal/thermal_zone0/temp",
		ExternalHost:   "obm.one",
		GatewayHost:    "192.168.1.1",
		PingDeadline:   2 * time.Second,
		ConnectionName: "preconfigured",
		SettleDelay:    2 * time.Second,
		PowerCommand:   []string{"sudo", "vcgencmd", "get_throttled"},
		NVMeCommand:    []string{"sudo", "/usr/sbin/nvme", "smart-log", "/dev/nvme0"},
		NMCLICommand:   []string{"sudo", "nmcli"},
		DiagnosticLog:  "/home/pi/system_monitor_diag.log",
		LogLevel:       "INFO",
	}
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch {
	case c.LogFile == "":
		return errors.New("log file path is empty")
	case c.ErrorFile == "":
		return errors.New("error file path is empty")
	case c.LogFile == c.ErrorFile:
		return fmt.Errorf("log file and error file are the same path: %s", c.LogFile)
	case c.MaxEntries < 1:
		return fmt.Errorf("max entries must be at least 1, got %d", c.MaxEntries)
	case c.Interval <= 0:
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	case c.PingDeadline < time.Second:
		return fmt.Errorf("ping deadline must be at least 1s, got %s", c.PingDeadline)
	case c.ConnectionName == "":
		return errors.New("connection name is empty")
	case len(c.PowerCommand) == 0 || len(c.NVMeCommand) == 0 || len(c.NMCLICommand) == 0:
		return errors.New("utility command lines must not be empty")
	}
	return nil
}
