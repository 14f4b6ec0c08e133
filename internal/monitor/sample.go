package monitor

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/gysosin/Pi_monitor/internal/collectors"
)

// TimestampLayout is the second-precision stamp used in both log files.
const TimestampLayout = "%Y-%m-%d %H:%M:%S"

// PingOK is the ping field when both reachability probes succeed.
const PingOK = "OK"

// FormatTimestamp renders t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return strftime.Format(TimestampLayout, t)
}

// Sample is one row of the rolling log.
type Sample struct {
	Timestamp time.Time
	CPUTemp   collectors.Temperature
	Load      float64
	Power     collectors.PowerStatus
	NVMeTemp  collectors.Temperature
	Ping      string
}

// String renders the fixed single-line layout.
func (s Sample) String() string {
	return fmt.Sprintf("%s | CPU Temp: %s°C | Load: %.2f | "+
		"Undervoltage: %s (Occurred: %s) | "+
		"Throttled: %s (Occurred: %s) | "+
		"Temp Limit: %s (Occurred: %s) | "+
		"NVMe Temp: %s°C | Ping: %s",
		FormatTimestamp(s.Timestamp),
		s.CPUTemp.Format("None"),
		s.Load,
		s.Power.UndervoltageNow, s.Power.UndervoltageOccurred,
		s.Power.ThrottledNow, s.Power.ThrottledOccurred,
		s.Power.TempLimitNow, s.Power.TempLimitOccurred,
		s.NVMeTemp.Format("N/A"),
		s.Ping,
	)
}
