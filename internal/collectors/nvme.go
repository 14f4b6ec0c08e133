package collectors

import (
	"bufio"
	"context"
	"regexp"
	"strconv"
	"strings"
)

var celsiusPattern = regexp.MustCompile(`(\d+)\s*°C`)

// ParseNVMeTemperature scans `nvme smart-log` output for the first temperature
// line carrying a Celsius value.
func ParseNVMeTemperature(out string) (Temperature, error) {
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(strings.ToLower(line), "temperature") {
			continue
		}
		m := celsiusPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return Celsius(v), nil
	}
	if err := sc.Err(); err != nil {
		return Temperature{}, err
	}
	return Temperature{}, ErrNoReading
}

// NVMeTemperature reads the drive's composite temperature from its SMART log.
func (h *Host) NVMeTemperature(ctx context.Context) Temperature {
	out, err := RunCommand(ctx, h.Runner, h.NVMeCommand)
	if err != nil {
		h.Log.Warnw("NVMe error", "error", err)
		return Temperature{}
	}
	t, err := ParseNVMeTemperature(string(out))
	if err != nil {
		h.Log.Debugw("NVMe temperature not found", "error", err)
		return Temperature{}
	}
	return t
}
