package containers

import (
	"context"
)

// PoolGateway defines the control-plane operations used by the orchestration
// layer. It abstracts the managed container service API.
type PoolGateway interface {
	// ListClusters returns the names of all clusters visible to the caller.
	ListClusters(ctx context.Context) ([]string, error)

	// ListPools returns every worker pool attached to the cluster.
	ListPools(ctx context.Context, cluster string) ([]WorkerPool, error)

	// GetPool returns a single worker pool by name.
	GetPool(ctx context.Context, cluster, pool string) (WorkerPool, error)

	// ResizePool requests a new per-zone size for the pool. The resize is
	// asynchronous in effect: the remote system applies the change over
	// time, and convergence must be observed via ListWorkers.
	ResizePool(ctx context.Context, cluster, pool string, sizePerZone int) error

	// ListWorkers returns all worker nodes of the cluster with their
	// current state. Used for readiness counting.
	ListWorkers(ctx context.Context, cluster string) ([]Worker, error)

	// GetClusterState returns the raw status label of the cluster, or
	// ClusterStateUnknown on any query failure. It never returns an error.
	GetClusterState(ctx context.Context, cluster string) string
}
