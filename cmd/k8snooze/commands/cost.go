package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/k8snooze/cmd/k8snooze/handlers"
)

// Cost returns the command for cluster cost analysis.
func Cost() *cobra.Command {
	var configPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "cost [cluster]",
		Short: "Show current vs hibernated monthly worker cost",
		Long: `Estimate worker cost using live control-plane pricing.

This command compares:
  - Current monthly cost of the cluster's worker pools
  - The cost of the same pools at the hibernated floor of one worker per zone
  - The monthly savings hibernation would yield
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cluster := ""
			if len(args) > 0 {
				cluster = args[0]
			}
			return handlers.Cost(cmd.Context(), configPath, cluster, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: k8snooze.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
