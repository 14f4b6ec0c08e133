package monitor

import "context"

// Pinger is the reachability probe.
type Pinger interface {
	Ping(ctx context.Context, host string) bool
}

// Reachability decides whether the network is usable from two probes: one
// external host and the local gateway. Both must answer.
type Reachability struct {
	Pinger   Pinger
	External string
	Gateway  string
}

// Healthy probes both targets in order and reports true only if both answered.
// Both probes always run.
func (r Reachability) Healthy(ctx context.Context) bool {
	external := r.Pinger.Ping(ctx, r.External)
	gateway := r.Pinger.Ping(ctx, r.Gateway)
	return external && gateway
}
