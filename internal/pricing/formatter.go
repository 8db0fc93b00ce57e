package pricing

import (
	"fmt"
	"strings"
)

// Format renders the cost summary as a plain-text table.
func Format(s *Summary) string {
	var b strings.Builder

	currency := s.Currency
	if currency == "" {
		currency = "USD"
	}

	fmt.Fprintf(&b, "Worker cost for cluster %q (%s/month)\n\n", s.Cluster, currency)
	fmt.Fprintf(&b, "%-20s %-14s %8s %10s %12s %12s\n", "POOL", "MACHINE TYPE", "WORKERS", "HIBERNATED", "CURRENT", "HIBERNATED")
	for _, item := range s.Items {
		current := fmt.Sprintf("%.2f", item.MonthlyNet)
		hibernated := fmt.Sprintf("%.2f", item.HibernatedNet)
		if !item.priced {
			current, hibernated = "n/a", "n/a"
		}
		fmt.Fprintf(&b, "%-20s %-14s %8d %10d %12s %12s\n",
			item.Pool, item.MachineType, item.Workers, item.HibernatedWorkers, current, hibernated)
	}

	fmt.Fprintf(&b, "\nCurrent monthly:    %10.2f\n", s.MonthlyNet)
	fmt.Fprintf(&b, "Hibernated monthly: %10.2f\n", s.HibernatedNet)
	fmt.Fprintf(&b, "Monthly savings:    %10.2f\n", s.MonthlySavings)

	if len(s.UnpricedPools) > 0 {
		fmt.Fprintf(&b, "\nNo price found for pools: %s (excluded from totals)\n", strings.Join(s.UnpricedPools, ", "))
	}
	return b.String()
}
