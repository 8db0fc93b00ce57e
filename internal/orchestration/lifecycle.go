package orchestration

import (
	"context"

	"github.com/imamik/k8snooze/internal/platform/containers"
)

// LifecycleState classifies a cluster's current worker footprint. It is
// derived at query time, never stored.
type LifecycleState string

const (
	// LifecycleActive means the cluster runs at or near full capacity.
	LifecycleActive LifecycleState = "Active"
	// LifecycleHibernated means the cluster runs the minimum viable
	// footprint of one worker per zone.
	LifecycleHibernated LifecycleState = "Hibernated"
	// LifecycleUnknown means the query failed or the footprint is
	// ambiguous.
	LifecycleUnknown LifecycleState = "Unknown"
)

// classifyCluster derives the lifecycle state from a fresh worker listing.
// A cluster whose worker count equals its total zone count is at the
// platform floor of one worker per zone and classifies as hibernated.
func classifyCluster(ctx context.Context, gw containers.PoolGateway, cluster string) LifecycleState {
	pools, err := gw.ListPools(ctx, cluster)
	if err != nil {
		return LifecycleUnknown
	}
	workers, err := gw.ListWorkers(ctx, cluster)
	if err != nil {
		return LifecycleUnknown
	}

	zones := 0
	for _, p := range pools {
		zones += p.ZoneCount
	}
	if zones == 0 {
		return LifecycleUnknown
	}

	switch {
	case len(workers) == zones:
		return LifecycleHibernated
	case len(workers) > zones:
		return LifecycleActive
	default:
		// Fewer workers than zones: mid-drain or degraded, not a state
		// the orchestrators can reason about.
		return LifecycleUnknown
	}
}
