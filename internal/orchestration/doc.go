// Package orchestration drives worker-pool hibernation and wake transitions.
//
// The hibernation path captures every pool's current per-zone size into the
// state store, shrinks each pool to one worker per zone, and watches the
// cluster drain. The wake path restores each pool to its captured size and
// watches the workers come back. Pool-scoped failures degrade to aggregate
// warnings; failures discovering the cluster or touching the record set
// abort the whole operation. A fleet reporter classifies every known
// cluster for observability and never mutates state.
package orchestration
