package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/k8snooze/cmd/k8snooze/handlers"
)

// Status returns the command that classifies every known cluster.
func Status() *cobra.Command {
	var configPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show Active/Hibernated/Unknown classification for all clusters",
		Long: `List every cluster with its derived lifecycle classification.

A cluster with no workers reads as hibernated, a cluster whose worker
count cannot be queried reads as Unknown, and anything else as Active,
annotated with the raw state label the control plane reports. One
cluster's query failure does not abort the listing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Status(cmd.Context(), configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: k8snooze.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
