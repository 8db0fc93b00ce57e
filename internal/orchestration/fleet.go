package orchestration

import (
	"context"
	"sort"

	"github.com/go-logr/logr"

	"github.com/imamik/k8snooze/internal/platform/containers"
)

// ClusterStatus is one fleet entry: the derived classification plus the raw
// state label the control plane reported.
type ClusterStatus struct {
	Name           string         `json:"name"`
	Classification LifecycleState `json:"classification"`
	WorkerCount    int            `json:"workerCount"`
	RawState       string         `json:"rawState"`
}

// FleetReporter classifies every known cluster for observability. It never
// mutates state, and one cluster's query failure does not abort the
// listing.
type FleetReporter struct {
	gateway containers.PoolGateway
	log     logr.Logger
}

// NewFleetReporter creates a fleet status reporter.
func NewFleetReporter(gw containers.PoolGateway, log logr.Logger) *FleetReporter {
	return &FleetReporter{gateway: gw, log: log}
}

// Report returns the classification of every cluster, sorted by name.
func (r *FleetReporter) Report(ctx context.Context) ([]ClusterStatus, error) {
	names, err := r.gateway.ListClusters(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]ClusterStatus, 0, len(names))
	for _, name := range names {
		statuses = append(statuses, r.classify(ctx, name))
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses, nil
}

func (r *FleetReporter) classify(ctx context.Context, name string) ClusterStatus {
	status := ClusterStatus{
		Name:     name,
		RawState: r.gateway.GetClusterState(ctx, name),
	}

	workers, err := r.gateway.ListWorkers(ctx, name)
	if err != nil {
		r.log.V(1).Info("worker count unavailable", "cluster", name, "error", err.Error())
		status.Classification = LifecycleUnknown
		status.WorkerCount = -1
		return status
	}

	status.WorkerCount = len(workers)
	switch {
	case len(workers) == 0:
		// With the platform floor of one worker per zone this branch is
		// effectively unreachable, but a clusterless footprint still
		// reads as hibernated.
		status.Classification = LifecycleHibernated
	default:
		status.Classification = LifecycleActive
	}
	return status
}
