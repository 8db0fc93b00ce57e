package containers

import (
	"errors"
	"fmt"
)

// Sentinel errors for the control-plane boundary. Callers match them with
// errors.Is; the real client wraps them with cluster/pool context so
// user-visible failures always name the affected resource.
var (
	// ErrRemoteUnavailable indicates the control plane could not be
	// reached or answered with a server-side failure. Transient.
	ErrRemoteUnavailable = errors.New("control plane unavailable")

	// ErrClusterNotFound indicates the cluster id is unknown to the
	// control plane. Fatal to the whole operation.
	ErrClusterNotFound = errors.New("cluster not found")

	// ErrPoolNotFound indicates the worker pool does not exist in the
	// cluster. Fatal to the whole operation.
	ErrPoolNotFound = errors.New("worker pool not found")

	// ErrResizeRejected indicates the control plane refused a resize
	// request, typically due to an invalid size. Scoped to a single pool.
	ErrResizeRejected = errors.New("resize rejected")
)

// IsNotFound reports whether the error indicates a missing cluster or pool.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrClusterNotFound) || errors.Is(err, ErrPoolNotFound)
}

// IsRemoteUnavailable reports whether the error indicates a transient
// control-plane failure.
func IsRemoteUnavailable(err error) bool {
	return errors.Is(err, ErrRemoteUnavailable)
}

// clusterError wraps a sentinel with the cluster it concerns.
func clusterError(sentinel error, cluster string) error {
	return fmt.Errorf("cluster %q: %w", cluster, sentinel)
}

// poolError wraps a sentinel with the cluster and pool it concerns.
func poolError(sentinel error, cluster, pool string) error {
	return fmt.Errorf("cluster %q pool %q: %w", cluster, pool, sentinel)
}
