package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/k8snooze/internal/config"
	"github.com/imamik/k8snooze/internal/orchestration"
)

// Hibernate shrinks every worker pool of the cluster to one worker per
// zone, capturing the original sizes first.
func Hibernate(ctx context.Context, configPath, cluster string, force bool) error {
	cfg, cluster, err := loadConfig(configPath, cluster)
	if err != nil {
		return err
	}
	if cluster == "" {
		return fmt.Errorf("no cluster given and no cluster_name configured")
	}

	log := newLogger()
	gw, err := newGateway(cfg)
	if err != nil {
		return err
	}
	store, err := newStore(cfg, log)
	if err != nil {
		return err
	}

	timeouts := config.LoadTimeouts()
	h := orchestration.NewHibernator(gw, store, log, orchestration.HibernatorOptions{
		Force:        force,
		PollInterval: timeouts.PollInterval,
		DrainTimeout: timeouts.Drain,
	})

	fmt.Printf("Hibernating cluster %q...\n", cluster)
	res, err := h.Run(ctx, cluster)
	if err != nil {
		return err
	}
	return renderResult(res)
}
