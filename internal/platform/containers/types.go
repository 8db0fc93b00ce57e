package containers

// WorkerPool is a named, independently sizable group of workers replicated
// across availability zones. SizePerZone is the per-zone worker count; the
// total worker count is SizePerZone * ZoneCount.
type WorkerPool struct {
	Name        string `json:"name"`
	MachineType string `json:"machineType"`
	SizePerZone int    `json:"sizePerZone"`
	ZoneCount   int    `json:"zoneCount"`
}

// TotalWorkers returns the number of workers the pool provisions across
// all zones.
func (p WorkerPool) TotalWorkers() int {
	return p.SizePerZone * p.ZoneCount
}

// WorkerState is the lifecycle state reported for a single worker node.
type WorkerState string

const (
	// WorkerStateNormal means the worker is provisioned and ready.
	WorkerStateNormal WorkerState = "normal"
)

// Worker is a single worker node as reported by the control plane.
type Worker struct {
	ID    string      `json:"id"`
	Pool  string      `json:"pool"`
	Zone  string      `json:"zone"`
	State WorkerState `json:"state"`
}

// ClusterStateUnknown is the sentinel returned by GetClusterState when the
// control plane cannot be queried. Status probing is best-effort and must
// never fail hard.
const ClusterStateUnknown = "unknown"
