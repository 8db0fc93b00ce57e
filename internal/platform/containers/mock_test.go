package containers

import (
	"context"
	"errors"
	"testing"
)

func TestMockGateway_InterfaceCompliance(_ *testing.T) {
	var _ PoolGateway = (*MockGateway)(nil)
}

func TestMockGateway_Defaults(t *testing.T) {
	m := &MockGateway{}
	ctx := context.Background()

	pools, err := m.ListPools(ctx, "demo")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(pools) != 0 {
		t.Errorf("expected no pools, got %d", len(pools))
	}

	if state := m.GetClusterState(ctx, "demo"); state != "normal" {
		t.Errorf("expected 'normal', got %q", state)
	}
}

func TestMockGateway_RecordsResizeCalls(t *testing.T) {
	expectedErr := errors.New("rejected")
	m := &MockGateway{
		ResizePoolFunc: func(_ context.Context, _, pool string, _ int) error {
			if pool == "bad" {
				return expectedErr
			}
			return nil
		},
	}
	ctx := context.Background()

	if err := m.ResizePool(ctx, "demo", "good", 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := m.ResizePool(ctx, "demo", "bad", 1); !errors.Is(err, expectedErr) {
		t.Errorf("expected %v, got %v", expectedErr, err)
	}

	if len(m.ResizeCalls) != 2 {
		t.Fatalf("expected 2 recorded calls, got %d", len(m.ResizeCalls))
	}
	if m.ResizeCalls[0].Pool != "good" || m.ResizeCalls[1].Pool != "bad" {
		t.Errorf("calls recorded out of order: %+v", m.ResizeCalls)
	}
}
