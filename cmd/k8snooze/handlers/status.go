package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/imamik/k8snooze/internal/orchestration"
)

// Status lists every known cluster with its lifecycle classification.
func Status(ctx context.Context, configPath string, jsonOutput bool) error {
	cfg, _, err := loadConfig(configPath, "")
	if err != nil {
		return err
	}

	gw, err := newGateway(cfg)
	if err != nil {
		return err
	}

	reporter := orchestration.NewFleetReporter(gw, newLogger())
	statuses, err := reporter.Report(ctx)
	if err != nil {
		return fmt.Errorf("failed to list clusters: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	if len(statuses) == 0 {
		fmt.Println("No clusters found.")
		return nil
	}
	return renderStatusTable(statuses)
}

func renderStatusTable(statuses []orchestration.ClusterStatus) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "CLUSTER\tCLASSIFICATION\tWORKERS\tSTATE")
	for _, s := range statuses {
		workers := fmt.Sprintf("%d", s.WorkerCount)
		if s.WorkerCount < 0 {
			workers = "?"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, s.Classification, workers, s.RawState)
	}
	return w.Flush()
}
