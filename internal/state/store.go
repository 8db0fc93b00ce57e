// Package state persists the per-cluster records needed to reverse a
// hibernation.
//
// A record set maps each worker pool to the per-zone size it had before it
// was shrunk. The set is created before any resize is issued and deleted
// only after a wake has restored the cluster, so the store is the sole
// source of truth for restoration. Appends reject duplicates outright: a
// second hibernation pass must never overwrite the true original size.
package state

import (
	"errors"
	"time"
)

var (
	// ErrDuplicateRecord indicates a record for the (cluster, pool) key
	// already exists. Appending over it would destroy the original size.
	ErrDuplicateRecord = errors.New("hibernation record already exists")

	// ErrRecordSetNotFound indicates no records exist for the cluster.
	ErrRecordSetNotFound = errors.New("no hibernation records for cluster")
)

// Record is one persisted (cluster, pool) -> original size entry.
type Record struct {
	Cluster             string
	Pool                string
	OriginalSizePerZone int
	CapturedAt          time.Time
}

// Store persists and retrieves hibernation records per cluster.
//
// Implementations must make Append atomic with respect to the duplicate
// check: a concurrent second append for the same key must not slip past
// check-then-write.
type Store interface {
	// HasRecordSet reports whether any records exist for the cluster.
	HasRecordSet(cluster string) bool

	// Append adds a record for the pool. Returns ErrDuplicateRecord if a
	// record for (cluster, pool) already exists.
	Append(cluster, pool string, originalSizePerZone int) error

	// ReadAll returns the pool -> original size mapping for the cluster
	// together with the names of pools whose stored entries could not be
	// parsed. Malformed entries are dropped and flagged, never fatal.
	// Returns ErrRecordSetNotFound when no record set exists.
	ReadAll(cluster string) (map[string]int, []string, error)

	// Clear removes all records for the cluster. Idempotent.
	Clear(cluster string) error
}
