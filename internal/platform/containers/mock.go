package containers

import (
	"context"
)

// MockGateway is a configurable PoolGateway double for tests. Each method
// delegates to the corresponding func field when set and otherwise returns
// a benign default.
type MockGateway struct {
	ListClustersFunc    func(ctx context.Context) ([]string, error)
	ListPoolsFunc       func(ctx context.Context, cluster string) ([]WorkerPool, error)
	GetPoolFunc         func(ctx context.Context, cluster, pool string) (WorkerPool, error)
	ResizePoolFunc      func(ctx context.Context, cluster, pool string, sizePerZone int) error
	ListWorkersFunc     func(ctx context.Context, cluster string) ([]Worker, error)
	GetClusterStateFunc func(ctx context.Context, cluster string) string

	// ResizeCalls records every ResizePool invocation in order.
	ResizeCalls []ResizeCall
}

// ResizeCall captures the arguments of one ResizePool invocation.
type ResizeCall struct {
	Cluster     string
	Pool        string
	SizePerZone int
}

func (m *MockGateway) ListClusters(ctx context.Context) ([]string, error) {
	if m.ListClustersFunc != nil {
		return m.ListClustersFunc(ctx)
	}
	return nil, nil
}

func (m *MockGateway) ListPools(ctx context.Context, cluster string) ([]WorkerPool, error) {
	if m.ListPoolsFunc != nil {
		return m.ListPoolsFunc(ctx, cluster)
	}
	return nil, nil
}

func (m *MockGateway) GetPool(ctx context.Context, cluster, pool string) (WorkerPool, error) {
	if m.GetPoolFunc != nil {
		return m.GetPoolFunc(ctx, cluster, pool)
	}
	return WorkerPool{Name: pool, SizePerZone: 1, ZoneCount: 1}, nil
}

func (m *MockGateway) ResizePool(ctx context.Context, cluster, pool string, sizePerZone int) error {
	m.ResizeCalls = append(m.ResizeCalls, ResizeCall{Cluster: cluster, Pool: pool, SizePerZone: sizePerZone})
	if m.ResizePoolFunc != nil {
		return m.ResizePoolFunc(ctx, cluster, pool, sizePerZone)
	}
	return nil
}

func (m *MockGateway) ListWorkers(ctx context.Context, cluster string) ([]Worker, error) {
	if m.ListWorkersFunc != nil {
		return m.ListWorkersFunc(ctx, cluster)
	}
	return nil, nil
}

func (m *MockGateway) GetClusterState(ctx context.Context, cluster string) string {
	if m.GetClusterStateFunc != nil {
		return m.GetClusterStateFunc(ctx, cluster)
	}
	return "normal"
}
