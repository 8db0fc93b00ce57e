package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/imamik/k8snooze/internal/pricing"
)

// Cost prints the current vs hibernated monthly worker cost for a cluster.
func Cost(ctx context.Context, configPath, cluster string, jsonOutput bool) error {
	cfg, cluster, err := loadConfig(configPath, cluster)
	if err != nil {
		return err
	}
	if cluster == "" {
		return fmt.Errorf("no cluster given and no cluster_name configured")
	}

	gw, err := newGateway(cfg)
	if err != nil {
		return err
	}

	pools, err := gw.ListPools(ctx, cluster)
	if err != nil {
		return fmt.Errorf("failed to list pools for cluster %q: %w", cluster, err)
	}
	if len(pools) == 0 {
		return fmt.Errorf("cluster %q has no worker pools", cluster)
	}

	sheet, err := pricing.NewClient(cfg.Pricing.Endpoint, cfg.Token()).FetchSheet(ctx)
	if err != nil {
		return err
	}

	summary := pricing.Estimate(cluster, pools, sheet)
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	fmt.Print(pricing.Format(summary))
	return nil
}
