package collectors

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/load"
)

// LoadAverage returns the one-minute load average. There is no fallback value,
// so failures are returned to the caller.
func (h *Host) LoadAverage(ctx context.Context) (float64, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("read load average: %w", err)
	}
	return avg.Load1, nil
}
