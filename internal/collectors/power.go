package collectors

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ParseThrottled decodes `vcgencmd get_throttled` output such as "throttled=0x50005".
func ParseThrottled(out string) (PowerStatus, error) {
	_, value, ok := strings.Cut(strings.TrimSpace(out), "=")
	if !ok {
		return UnknownPowerStatus, fmt.Errorf("%w: no '=' in %q", ErrNoReading, out)
	}
	hex := strings.TrimSpace(value)
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	code, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return UnknownPowerStatus, fmt.Errorf("parse throttled code %q: %w", value, err)
	}
	return PowerStatusFromCode(code), nil
}

// PowerStatus queries the firmware for undervoltage and throttling flags.
func (h *Host) PowerStatus(ctx context.Context) PowerStatus {
	out, err := RunCommand(ctx, h.Runner, h.PowerCommand)
	if err != nil {
		h.Log.Warnw("Voltage error", "error", err)
		return UnknownPowerStatus
	}
	status, err := ParseThrottled(string(out))
	if err != nil {
		h.Log.Warnw("Voltage error", "error", err)
		return UnknownPowerStatus
	}
	return status
}
