package pricing

import (
	"sort"

	"github.com/imamik/k8snooze/internal/platform/containers"
)

// LineItem is the cost of one worker pool at some footprint.
type LineItem struct {
	Pool              string  `json:"pool"`
	MachineType       string  `json:"machineType"`
	Workers           int     `json:"workers"`
	HibernatedWorkers int     `json:"hibernatedWorkers"`
	MonthlyNet        float64 `json:"monthlyNet"`
	HibernatedNet     float64 `json:"hibernatedNet"`
	priced            bool
}

// Summary compares a cluster's current monthly worker cost against its
// hibernated footprint of one worker per zone.
type Summary struct {
	Cluster        string     `json:"cluster"`
	Currency       string     `json:"currency"`
	Items          []LineItem `json:"items"`
	MonthlyNet     float64    `json:"monthlyNet"`
	HibernatedNet  float64    `json:"hibernatedNet"`
	MonthlySavings float64    `json:"monthlySavings"`
	UnpricedPools  []string   `json:"unpricedPools,omitempty"`
}

// Estimate builds the cost summary for a cluster's pools from a price
// sheet. Pools whose machine type has no price are listed but excluded
// from the totals and flagged.
func Estimate(cluster string, pools []containers.WorkerPool, sheet *Sheet) *Summary {
	summary := &Summary{Cluster: cluster, Currency: sheet.Currency}

	for _, pool := range pools {
		item := LineItem{
			Pool:              pool.Name,
			MachineType:       pool.MachineType,
			Workers:           pool.TotalWorkers(),
			HibernatedWorkers: pool.ZoneCount,
		}
		if unit, ok := sheet.ByType[pool.MachineType]; ok {
			item.MonthlyNet = unit * float64(item.Workers)
			item.HibernatedNet = unit * float64(item.HibernatedWorkers)
			item.priced = true
			summary.MonthlyNet += item.MonthlyNet
			summary.HibernatedNet += item.HibernatedNet
		} else {
			summary.UnpricedPools = append(summary.UnpricedPools, pool.Name)
		}
		summary.Items = append(summary.Items, item)
	}

	sort.Slice(summary.Items, func(i, j int) bool { return summary.Items[i].Pool < summary.Items[j].Pool })
	sort.Strings(summary.UnpricedPools)
	summary.MonthlySavings = summary.MonthlyNet - summary.HibernatedNet
	return summary
}
