package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/k8snooze/cmd/k8snooze/handlers"
)

// Wake returns the command that restores a hibernated cluster.
func Wake() *cobra.Command {
	var configPath string
	var sizePerZone int

	cmd := &cobra.Command{
		Use:   "wake [cluster]",
		Short: "Restore worker pools to their pre-hibernation sizes",
		Long: `Wake a hibernated cluster.

Each pool is restored to the per-zone size captured when it was
hibernated. Pools without a usable record (missing or malformed entries)
fall back to an interactively chosen size, to --size-per-zone when given,
or to the configured default.

The record set is deleted once every resize was accepted.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cluster := ""
			if len(args) > 0 {
				cluster = args[0]
			}
			return handlers.Wake(cmd.Context(), configPath, cluster, sizePerZone)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: k8snooze.yaml)")
	cmd.Flags().IntVar(&sizePerZone, "size-per-zone", 0, "Per-zone size for pools without a record (0 = prompt or default)")

	return cmd
}
