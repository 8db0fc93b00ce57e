package orchestration

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAlreadyHibernating indicates a hibernation record set already exists
// for the cluster. A second capture pass would overwrite the true original
// sizes, so the whole operation aborts before any resize is issued.
var ErrAlreadyHibernating = errors.New("cluster is already hibernating")

// Outcome is the terminal result class of an orchestrator run.
type Outcome int

const (
	// OutcomeSuccess means every step completed and converged.
	OutcomeSuccess Outcome = iota
	// OutcomeWarning means the durable effects happened but something
	// advisory did not complete, such as convergence within the timeout.
	OutcomeWarning
	// OutcomeFailure means at least one pool operation failed.
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeWarning:
		return "success-with-warning"
	case OutcomeFailure:
		return "failure"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// PoolFailure records a pool-scoped error.
type PoolFailure struct {
	Pool string
	Err  error
}

// Result reports the outcome of one orchestrator run. Failures always name
// the affected cluster and pools.
type Result struct {
	Cluster  string
	Outcome  Outcome
	Warnings []string
	Failed   []PoolFailure
}

func newResult(cluster string) *Result {
	return &Result{Cluster: cluster}
}

// warn records an advisory condition and degrades a success to a warning.
func (r *Result) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
	if r.Outcome == OutcomeSuccess {
		r.Outcome = OutcomeWarning
	}
}

// failPool records a pool-scoped failure and marks the run failed.
func (r *Result) failPool(pool string, err error) {
	r.Failed = append(r.Failed, PoolFailure{Pool: pool, Err: err})
	r.Outcome = OutcomeFailure
}

// FailedPools returns the names of all pools that failed.
func (r *Result) FailedPools() []string {
	names := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		names = append(names, f.Pool)
	}
	return names
}

// Summary renders a one-line human summary of the run.
func (r *Result) Summary() string {
	switch r.Outcome {
	case OutcomeFailure:
		return fmt.Sprintf("cluster %q: failed pools: %s", r.Cluster, strings.Join(r.FailedPools(), ", "))
	case OutcomeWarning:
		return fmt.Sprintf("cluster %q: completed with warnings: %s", r.Cluster, strings.Join(r.Warnings, "; "))
	default:
		return fmt.Sprintf("cluster %q: completed", r.Cluster)
	}
}
