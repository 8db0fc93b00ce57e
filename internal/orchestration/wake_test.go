package orchestration

import (
	"context"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/k8snooze/internal/platform/containers"
	"github.com/imamik/k8snooze/internal/state"
)

func fastWakerOpts() WakerOptions {
	return WakerOptions{
		PollInterval: time.Millisecond,
		ScaleTimeout: 50 * time.Millisecond,
	}
}

// hibernatedGateway mocks a 3-zone cluster with one pool at the floor size
// whose workers all come ready once the pool is restored.
func hibernatedGateway() *containers.MockGateway {
	size := 1
	gw := &containers.MockGateway{}
	gw.ListPoolsFunc = func(_ context.Context, _ string) ([]containers.WorkerPool, error) {
		return []containers.WorkerPool{
			{Name: "default", MachineType: "b3c.4x16", SizePerZone: size, ZoneCount: 3},
		}, nil
	}
	gw.ResizePoolFunc = func(_ context.Context, _, _ string, newSize int) error {
		size = newSize
		return nil
	}
	gw.ListWorkersFunc = func(_ context.Context, _ string) ([]containers.Worker, error) {
		workers := make([]containers.Worker, size*3)
		for i := range workers {
			workers[i] = containers.Worker{Pool: "default", State: containers.WorkerStateNormal}
		}
		return workers, nil
	}
	return gw
}

func TestWaker_DemoScenario(t *testing.T) {
	gw := hibernatedGateway()
	store := state.NewMemoryStore()
	require.NoError(t, store.Append("demo", "default", 3))

	w := NewWaker(gw, store, nil, logr.Discard(), fastWakerOpts())
	res, err := w.Run(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, res.Outcome)

	// The pool is restored to its recorded size.
	require.Len(t, gw.ResizeCalls, 1)
	assert.Equal(t, containers.ResizeCall{Cluster: "demo", Pool: "default", SizePerZone: 3}, gw.ResizeCalls[0])

	// The record set is deleted on success.
	assert.False(t, store.HasRecordSet("demo"))
}

func TestRoundTrip_RestoresExactSizes(t *testing.T) {
	// hibernate then wake with no interference restores every pool to its
	// initial size.
	sizes := map[string]int{"default": 3, "compute": 5, "edge": 1}
	zones := map[string]int{"default": 3, "compute": 2, "edge": 2}

	gw := &containers.MockGateway{}
	gw.ListPoolsFunc = func(_ context.Context, _ string) ([]containers.WorkerPool, error) {
		var pools []containers.WorkerPool
		for _, name := range []string{"compute", "default", "edge"} {
			pools = append(pools, containers.WorkerPool{Name: name, SizePerZone: sizes[name], ZoneCount: zones[name]})
		}
		return pools, nil
	}
	gw.ResizePoolFunc = func(_ context.Context, _, pool string, newSize int) error {
		sizes[pool] = newSize
		return nil
	}
	gw.ListWorkersFunc = func(_ context.Context, _ string) ([]containers.Worker, error) {
		total := 0
		for name, s := range sizes {
			total += s * zones[name]
		}
		workers := make([]containers.Worker, total)
		for i := range workers {
			workers[i] = containers.Worker{State: containers.WorkerStateNormal}
		}
		return workers, nil
	}

	store := state.NewMemoryStore()
	h := NewHibernator(gw, store, logr.Discard(), fastHibernatorOpts())
	w := NewWaker(gw, store, nil, logr.Discard(), fastWakerOpts())

	_, err := h.Run(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"default": 1, "compute": 1, "edge": 1}, sizes)

	res, err := w.Run(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, res.Outcome)
	assert.Equal(t, map[string]int{"default": 3, "compute": 5, "edge": 1}, sizes)
	assert.False(t, store.HasRecordSet("demo"))
}

func TestWaker_MalformedRecordRecovery(t *testing.T) {
	// A malformed record is discarded and the pool falls back to default
	// reconstruction instead of crashing the wake.
	gw := &containers.MockGateway{}
	gw.ListPoolsFunc = func(_ context.Context, _ string) ([]containers.WorkerPool, error) {
		return []containers.WorkerPool{
			{Name: "default", SizePerZone: 1, ZoneCount: 3},
			{Name: "poolX", SizePerZone: 1, ZoneCount: 2},
		}, nil
	}
	gw.ListWorkersFunc = func(_ context.Context, _ string) ([]containers.Worker, error) {
		return []containers.Worker{{State: containers.WorkerStateNormal}}, nil
	}

	store := state.NewMemoryStore()
	require.NoError(t, store.Append("demo", "default", 3))
	store.Malformed = map[string][]string{"demo": {"poolX"}}

	w := NewWaker(gw, store, nil, logr.Discard(), WakerOptions{PollInterval: time.Millisecond, ScaleTimeout: 5 * time.Millisecond})
	res, err := w.Run(context.Background(), "demo")
	require.NoError(t, err)
	assert.NotEqual(t, OutcomeFailure, res.Outcome)

	targets := map[string]int{}
	for _, call := range gw.ResizeCalls {
		targets[call.Pool] = call.SizePerZone
	}
	assert.Equal(t, 3, targets["default"], "recorded size wins")
	assert.Equal(t, DefaultWakeSizePerZone, targets["poolX"], "malformed entry reconstructs to the default")
	assert.NotEmpty(t, res.Warnings, "reconstruction must be flagged, never silent")
}

func TestWaker_MissingRecordSetReconstructsAllPools(t *testing.T) {
	gw := &containers.MockGateway{}
	gw.ListPoolsFunc = func(_ context.Context, _ string) ([]containers.WorkerPool, error) {
		return []containers.WorkerPool{
			{Name: "default", SizePerZone: 1, ZoneCount: 3},
		}, nil
	}
	gw.ListWorkersFunc = func(_ context.Context, _ string) ([]containers.Worker, error) {
		return []containers.Worker{{State: containers.WorkerStateNormal}}, nil
	}

	w := NewWaker(gw, state.NewMemoryStore(), StaticSizeResolver{SizePerZone: 4}, logr.Discard(), fastWakerOpts())
	res, err := w.Run(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, OutcomeWarning, res.Outcome)

	require.Len(t, gw.ResizeCalls, 1)
	assert.Equal(t, 4, gw.ResizeCalls[0].SizePerZone)
}

func TestWaker_PartialFailureKeepsRecords(t *testing.T) {
	gw := &containers.MockGateway{}
	gw.ListPoolsFunc = func(_ context.Context, _ string) ([]containers.WorkerPool, error) {
		return []containers.WorkerPool{
			{Name: "pool-a", SizePerZone: 1, ZoneCount: 2},
			{Name: "pool-b", SizePerZone: 1, ZoneCount: 2},
		}, nil
	}
	gw.ResizePoolFunc = func(_ context.Context, _, pool string, _ int) error {
		if pool == "pool-b" {
			return containers.ErrRemoteUnavailable
		}
		return nil
	}

	store := state.NewMemoryStore()
	require.NoError(t, store.Append("demo", "pool-a", 3))
	require.NoError(t, store.Append("demo", "pool-b", 5))

	w := NewWaker(gw, store, nil, logr.Discard(), fastWakerOpts())
	res, err := w.Run(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailure, res.Outcome)
	assert.Equal(t, []string{"pool-b"}, res.FailedPools())

	// The record set survives so a retried wake can still restore pool-b.
	records, _, readErr := store.ReadAll("demo")
	require.NoError(t, readErr)
	assert.Equal(t, 5, records["pool-b"])
}

func TestWaker_ScaleTimeoutIsWarningAndClearsRecords(t *testing.T) {
	gw := hibernatedGateway()
	// One worker stays unready forever.
	gw.ListWorkersFunc = func(_ context.Context, _ string) ([]containers.Worker, error) {
		return []containers.Worker{
			{State: containers.WorkerStateNormal},
			{State: "provisioning"},
		}, nil
	}

	store := state.NewMemoryStore()
	require.NoError(t, store.Append("demo", "default", 3))

	w := NewWaker(gw, store, nil, logr.Discard(), WakerOptions{PollInterval: time.Millisecond, ScaleTimeout: 5 * time.Millisecond})
	res, err := w.Run(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, OutcomeWarning, res.Outcome)

	// Restoration is logically complete once all resizes were accepted,
	// so the record set is still deleted.
	assert.False(t, store.HasRecordSet("demo"))
}
