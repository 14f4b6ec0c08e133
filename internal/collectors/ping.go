package collectors

import (
	"context"
	"strconv"
	"time"
)

// Ping sends a single ICMP echo to host and reports whether it was answered.
// Any failure, including a missing ping binary, counts as unreachable.
func (h *Host) Ping(ctx context.Context, host string) bool {
	deadline := int(h.PingDeadline / time.Second)
	if deadline < 1 {
		deadline = 1
	}
	_, err := h.Runner.Run(ctx, "ping", "-c", "1", "-W", strconv.Itoa(deadline), host)
	if err != nil {
		h.Log.Debugw("Ping failed", "host", host, "error", err)
		return false
	}
	return true
}
