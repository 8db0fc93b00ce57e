package handlers

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/imamik/k8snooze/internal/config"
	"github.com/imamik/k8snooze/internal/orchestration"
)

// Wake restores the cluster's worker pools to their captured sizes.
// sizePerZone, when positive, overrides reconstruction for pools without
// a usable record; otherwise an interactive prompt (on a TTY) or the
// configured default supplies the size.
func Wake(ctx context.Context, configPath, cluster string, sizePerZone int) error {
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
	w := orchestration.NewWaker(gw, store, chooseResolver(sizePerZone, cfg.WakeSizePerZone), log, orchestration.WakerOptions{
		PollInterval: timeouts.PollInterval,
		ScaleTimeout: timeouts.Scale,
	})

	fmt.Printf("Waking cluster %q...\n", cluster)
	res, err := w.Run(ctx, cluster)
	if err != nil {
		return err
	}
	return renderResult(res)
}

// chooseResolver picks how target sizes are reconstructed for pools
// without a usable record.
func chooseResolver(flagSize, defaultSize int) orchestration.SizeResolver {
	if flagSize > 0 {
		return orchestration.StaticSizeResolver{SizePerZone: flagSize}
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return &promptSizeResolver{fallback: defaultSize}
	}
	return orchestration.StaticSizeResolver{SizePerZone: defaultSize}
}

// promptSizeResolver asks the operator for a per-zone size when a pool's
// original size could not be recovered.
type promptSizeResolver struct {
	fallback int
}

func (r *promptSizeResolver) TargetSize(_ context.Context, cluster, pool string, zoneCount int) (int, error) {
	value := strconv.Itoa(r.fallback)
	input := huh.NewInput().
		Title(fmt.Sprintf("Per-zone size for pool %q", pool)).
		Description(fmt.Sprintf("Cluster %q has no usable record for this pool (%d zones). Enter the size to restore.", cluster, zoneCount)).
		Validate(func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				return fmt.Errorf("enter a whole number of at least 1")
			}
			return nil
		}).
		Value(&value)

	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		return 0, fmt.Errorf("size prompt for pool %q failed: %w", pool, err)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q for pool %q: %w", value, pool, err)
	}
	return n, nil
}
