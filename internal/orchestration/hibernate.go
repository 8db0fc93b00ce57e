package orchestration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/k8snooze/internal/platform/containers"
	"github.com/imamik/k8snooze/internal/reconcile"
	"github.com/imamik/k8snooze/internal/state"
)

// hibernatedSizePerZone is the minimum viable pool size: the platform
// requires at least one worker per zone.
const hibernatedSizePerZone = 1

// HibernatorOptions tune a hibernation run.
type HibernatorOptions struct {
	// Force proceeds even when the cluster does not classify as Active.
	// Downgraded or partially drained clusters can still be hibernated.
	Force bool
	// PollInterval is the delay between drain observations.
	PollInterval time.Duration
	// DrainTimeout bounds the wait for workers to drain to the floor.
	DrainTimeout time.Duration
}

// Hibernator drives the Active -> Hibernated transition: capture every
// pool's size, shrink to one worker per zone, watch the drain.
type Hibernator struct {
	gateway containers.PoolGateway
	store   state.Store
	log     logr.Logger
	opts    HibernatorOptions
}

// NewHibernator creates a hibernation orchestrator.
func NewHibernator(gw containers.PoolGateway, store state.Store, log logr.Logger, opts HibernatorOptions) *Hibernator {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 15 * time.Second
	}
	if opts.DrainTimeout <= 0 {
		opts.DrainTimeout = 30 * time.Minute
	}
	return &Hibernator{gateway: gw, store: store, log: log, opts: opts}
}

// Run hibernates the cluster. It returns an error only for failures that
// abort the whole operation (unknown cluster, record-set conflicts); pool
// scoped resize failures are aggregated in the Result.
func (h *Hibernator) Run(ctx context.Context, cluster string) (*Result, error) {
	if cluster == "" {
		return nil, fmt.Errorf("cluster name must not be empty")
	}
	res := newResult(cluster)

	// A surviving record set means a prior hibernation was never woken.
	// Abort before capturing anything so no partial state is written.
	if h.store.HasRecordSet(cluster) {
		return nil, fmt.Errorf("cluster %q: %w (wake the cluster first)", cluster, ErrAlreadyHibernating)
	}

	// Capturing: record every pool's current size before touching anything.
	lifecycle := classifyCluster(ctx, h.gateway, cluster)
	if lifecycle != LifecycleActive {
		if !h.opts.Force {
			return nil, fmt.Errorf("cluster %q classifies as %s, not Active; re-run with force to hibernate anyway", cluster, lifecycle)
		}
		res.warn("cluster classifies as %s, proceeding on force", lifecycle)
	}

	pools, err := h.gateway.ListPools(ctx, cluster)
	if err != nil {
		return nil, fmt.Errorf("failed to discover worker pools: %w", err)
	}
	if len(pools) == 0 {
		return nil, fmt.Errorf("cluster %q has no worker pools to hibernate", cluster)
	}

	for _, pool := range pools {
		if pool.SizePerZone < 1 {
			res.warn("pool %q has no workers, skipping capture", pool.Name)
			continue
		}
		if err := h.store.Append(cluster, pool.Name, pool.SizePerZone); err != nil {
			if errors.Is(err, state.ErrDuplicateRecord) {
				// A stale record means a previous hibernation was never
				// woken. Overwriting it would destroy the true original
				// size, so the whole operation aborts before any resize.
				return nil, fmt.Errorf("cluster %q: %w (pool %q still has a record; wake the cluster first)", cluster, ErrAlreadyHibernating, pool.Name)
			}
			return nil, fmt.Errorf("failed to capture state for pool %q: %w", pool.Name, err)
		}
		h.log.Info("captured pool size", "cluster", cluster, "pool", pool.Name, "sizePerZone", pool.SizePerZone)
	}

	// Resizing: shrink every pool to the floor, sequentially. One pool's
	// failure must not stop the rest or roll back captured records.
	totalZones := 0
	for _, pool := range pools {
		totalZones += pool.ZoneCount
		if pool.SizePerZone == hibernatedSizePerZone {
			h.log.Info("pool already at floor size", "cluster", cluster, "pool", pool.Name)
			continue
		}
		if err := h.gateway.ResizePool(ctx, cluster, pool.Name, hibernatedSizePerZone); err != nil {
			h.log.Error(err, "resize failed", "cluster", cluster, "pool", pool.Name)
			res.failPool(pool.Name, err)
			continue
		}
		h.log.Info("resize requested", "cluster", cluster, "pool", pool.Name, "sizePerZone", hibernatedSizePerZone)
	}

	if res.Outcome == OutcomeFailure {
		return res, nil
	}

	// Verifying: watch the drain. The resizes are already requested and
	// the records durable, so a timeout is advisory only.
	err = reconcile.WaitUntil(ctx, func(ctx context.Context) (bool, error) {
		workers, err := h.gateway.ListWorkers(ctx, cluster)
		if err != nil {
			return false, err
		}
		normal := 0
		for _, w := range workers {
			if w.State == containers.WorkerStateNormal {
				normal++
			}
		}
		return normal <= totalZones, nil
	},
		reconcile.WithInterval(h.opts.PollInterval),
		reconcile.WithMaxWait(h.opts.DrainTimeout))
	switch {
	case errors.Is(err, reconcile.ErrTimedOut):
		res.warn("workers did not drain to %d within %s; resize is requested and will converge on its own", totalZones, h.opts.DrainTimeout)
	case err != nil:
		return res, err
	}

	h.log.Info("hibernation complete", "cluster", cluster, "outcome", res.Outcome.String())
	return res, nil
}
