package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/k8snooze/cmd/k8snooze/handlers"
)

// Hibernate returns the command that shrinks a cluster to its minimum
// viable worker footprint.
func Hibernate() *cobra.Command {
	var configPath string
	var force bool

	cmd := &cobra.Command{
		Use:   "hibernate [cluster]",
		Short: "Shrink all worker pools to one worker per zone",
		Long: `Hibernate a cluster's worker pools to cut cost.

Each pool's current per-zone size is captured into a local record file
before any resize is issued, so a later wake restores the exact original
sizes. Pools are then shrunk to the platform floor of one worker per zone.

A cluster with a surviving record set cannot be hibernated again: the
record is the only source of the original sizes and is never overwritten.

Workloads may be evicted while the worker count drops.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cluster := ""
			if len(args) > 0 {
				cluster = args[0]
			}
			return handlers.Hibernate(cmd.Context(), configPath, cluster, force)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: k8snooze.yaml)")
	cmd.Flags().BoolVar(&force, "force", false, "Hibernate even when the cluster does not classify as Active")

	return cmd
}
