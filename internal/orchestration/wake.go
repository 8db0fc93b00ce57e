package orchestration

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-logr/logr"
	"github.com/samber/lo"

	"github.com/imamik/k8snooze/internal/platform/containers"
	"github.com/imamik/k8snooze/internal/reconcile"
	"github.com/imamik/k8snooze/internal/state"
)

// DefaultWakeSizePerZone is used when no record exists for a pool and the
// caller supplies no target.
const DefaultWakeSizePerZone = 2

// SizeResolver supplies a per-zone target size for a pool whose original
// size could not be recovered from the record set.
type SizeResolver interface {
	TargetSize(ctx context.Context, cluster, pool string, zoneCount int) (int, error)
}

// StaticSizeResolver resolves every pool to a fixed per-zone size.
type StaticSizeResolver struct {
	SizePerZone int
}

func (r StaticSizeResolver) TargetSize(context.Context, string, string, int) (int, error) {
	if r.SizePerZone < 1 {
		return DefaultWakeSizePerZone, nil
	}
	return r.SizePerZone, nil
}

// WakerOptions tune a wake run.
type WakerOptions struct {
	// PollInterval is the delay between readiness observations.
	PollInterval time.Duration
	// ScaleTimeout bounds the wait for all workers to become ready. It is
	// longer than the drain timeout since scale-up provisions capacity.
	ScaleTimeout time.Duration
}

// Waker drives the Hibernated -> Active transition: resolve each pool's
// original size, restore it, watch readiness, then drop the record set.
type Waker struct {
	gateway  containers.PoolGateway
	store    state.Store
	resolver SizeResolver
	log      logr.Logger
	opts     WakerOptions
}

// NewWaker creates a wake orchestrator. resolver supplies target sizes for
// pools without a usable record; nil falls back to the default size.
func NewWaker(gw containers.PoolGateway, store state.Store, resolver SizeResolver, log logr.Logger, opts WakerOptions) *Waker {
	if resolver == nil {
		resolver = StaticSizeResolver{SizePerZone: DefaultWakeSizePerZone}
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 15 * time.Second
	}
	if opts.ScaleTimeout <= 0 {
		opts.ScaleTimeout = 45 * time.Minute
	}
	return &Waker{gateway: gw, store: store, resolver: resolver, log: log, opts: opts}
}

// Run wakes the cluster. Pool-scoped resize failures are aggregated in the
// Result; the record set is cleared only when every resize was accepted.
func (w *Waker) Run(ctx context.Context, cluster string) (*Result, error) {
	if cluster == "" {
		return nil, fmt.Errorf("cluster name must not be empty")
	}
	res := newResult(cluster)

	pools, err := w.gateway.ListPools(ctx, cluster)
	if err != nil {
		return nil, fmt.Errorf("failed to discover worker pools: %w", err)
	}
	if len(pools) == 0 {
		return nil, fmt.Errorf("cluster %q has no worker pools to wake", cluster)
	}

	targets, err := w.resolveTargets(ctx, cluster, pools, res)
	if err != nil {
		return nil, err
	}

	// Resizing: restore every pool sequentially; skip-and-continue on
	// per-pool failures, matching the hibernation path.
	for _, pool := range pools {
		target, ok := targets[pool.Name]
		if !ok {
			continue
		}
		if pool.SizePerZone == target {
			w.log.Info("pool already at target size", "cluster", cluster, "pool", pool.Name, "sizePerZone", target)
			continue
		}
		if err := w.gateway.ResizePool(ctx, cluster, pool.Name, target); err != nil {
			w.log.Error(err, "restore resize failed", "cluster", cluster, "pool", pool.Name, "sizePerZone", target)
			res.failPool(pool.Name, err)
			continue
		}
		w.log.Info("restore requested", "cluster", cluster, "pool", pool.Name, "sizePerZone", target)
	}

	if res.Outcome == OutcomeFailure {
		// Keep the record set: the failed pools still need their original
		// sizes for a retried wake. Restored pools tolerate a second
		// resize to the same size.
		return res, nil
	}

	// Verifying: wait for every worker to report ready. Advisory only.
	err = reconcile.WaitUntil(ctx, func(ctx context.Context) (bool, error) {
		workers, err := w.gateway.ListWorkers(ctx, cluster)
		if err != nil {
			return false, err
		}
		ready := lo.CountBy(workers, func(wk containers.Worker) bool {
			return wk.State == containers.WorkerStateNormal
		})
		return ready > 0 && ready == len(workers), nil
	},
		reconcile.WithInterval(w.opts.PollInterval),
		reconcile.WithMaxWait(w.opts.ScaleTimeout))
	switch {
	case errors.Is(err, reconcile.ErrTimedOut):
		res.warn("workers not all ready within %s; scale-up is requested and will converge on its own", w.opts.ScaleTimeout)
	case err != nil:
		return res, err
	}

	// All resizes were accepted: restoration is logically complete, with
	// or without convergence confirmation.
	if err := w.store.Clear(cluster); err != nil {
		res.warn("failed to clear hibernation records: %v", err)
	}

	w.log.Info("wake complete", "cluster", cluster, "outcome", res.Outcome.String())
	return res, nil
}

// resolveTargets builds the pool -> per-zone size restoration plan from the
// record set, reconstructing entries that are absent or malformed.
func (w *Waker) resolveTargets(ctx context.Context, cluster string, pools []containers.WorkerPool, res *Result) (map[string]int, error) {
	records, malformed, err := w.store.ReadAll(cluster)
	if err != nil {
		if !errors.Is(err, state.ErrRecordSetNotFound) {
			return nil, fmt.Errorf("failed to read hibernation records: %w", err)
		}
		// No records at all: reconstruct a target for every known pool.
		res.warn("no hibernation records for cluster %q, reconstructing target sizes", cluster)
		records = make(map[string]int)
	}

	needsReconstruction := map[string]bool{}
	for _, name := range malformed {
		needsReconstruction[name] = true
	}

	targets := make(map[string]int, len(pools))
	var reconstructed []string
	for _, pool := range pools {
		if size, ok := records[pool.Name]; ok && !needsReconstruction[pool.Name] {
			targets[pool.Name] = size
			continue
		}
		size, err := w.resolver.TargetSize(ctx, cluster, pool.Name, pool.ZoneCount)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve target size for pool %q: %w", pool.Name, err)
		}
		if size < 1 {
			return nil, fmt.Errorf("resolved target size %d for pool %q must be at least 1", size, pool.Name)
		}
		targets[pool.Name] = size
		reconstructed = append(reconstructed, pool.Name)
	}

	if len(reconstructed) > 0 {
		sort.Strings(reconstructed)
		for _, name := range reconstructed {
			res.warn("pool %q restored from reconstructed size %d per zone, not a captured record", name, targets[name])
		}
	}
	return targets, nil
}
