package collectors

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// ParseThermal converts a thermal-zone reading in millidegrees to Celsius,
// rounded to one decimal.
func ParseThermal(raw string) (Temperature, error) {
	s := strings.TrimSpace(raw)
	milli, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Temperature{}, fmt.Errorf("parse thermal value %q: %w", s, err)
	}
	return Celsius(math.Round(float64(milli)/100) / 10), nil
}

// CPUTemperature reads the SoC thermal zone.
func (h *Host) CPUTemperature(_ context.Context) Temperature {
	b, err := os.ReadFile(h.ThermalPath)
	if err != nil {
		h.Log.Debugw("CPU temperature unavailable", "path", h.ThermalPath, "error", err)
		return Temperature{}
	}
	t, err := ParseThermal(string(b))
	if err != nil {
		h.Log.Debugw("CPU temperature unavailable", "path", h.ThermalPath, "error", err)
		return Temperature{}
	}
	return t
}
