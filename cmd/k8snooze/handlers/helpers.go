// Package handlers implements the execution logic behind the CLI commands.
//
// Each handler loads configuration, wires the gateway, store, and
// orchestrators together, runs the operation, and renders the result.
// Exit semantics follow the orchestration outcome: failures surface as
// errors (non-zero exit) naming the affected pools, warnings print but
// exit zero.
package handlers

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/imamik/k8snooze/internal/config"
	"github.com/imamik/k8snooze/internal/orchestration"
	"github.com/imamik/k8snooze/internal/platform/containers"
	"github.com/imamik/k8snooze/internal/state"
)

// newLogger builds the structured logger handed to the orchestration
// layer. Human-facing output stays on fmt; the log carries the
// machine-grained trail, verbose only when K8SNOOZE_DEBUG is set.
func newLogger() logr.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if os.Getenv("K8SNOOZE_DEBUG") == "true" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard()
	}
	return zapr.NewLogger(zl)
}

// loadConfig loads configuration and resolves the target cluster: an
// explicit argument wins, otherwise the configured cluster_name.
func loadConfig(configPath, clusterArg string) (*config.Config, string, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	cluster := clusterArg
	if cluster == "" {
		cluster = cfg.ClusterName
	}
	return cfg, cluster, nil
}

// newGateway builds the control-plane client from config.
func newGateway(cfg *config.Config) (containers.PoolGateway, error) {
	token := cfg.Token()
	if token == "" {
		return nil, fmt.Errorf("K8SNOOZE_API_TOKEN environment variable is required")
	}
	return containers.NewRealClient(token, containers.WithEndpoint(cfg.APIEndpoint)), nil
}

// newStore opens the per-cluster record store.
func newStore(cfg *config.Config, log logr.Logger) (state.Store, error) {
	return state.NewFileStore(cfg.StateDir, log)
}

// renderResult prints the run outcome and converts failures into errors.
func renderResult(res *orchestration.Result) error {
	for _, w := range res.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	switch res.Outcome {
	case orchestration.OutcomeFailure:
		for _, f := range res.Failed {
			fmt.Printf("pool %q failed: %v\n", f.Pool, f.Err)
		}
		return fmt.Errorf("%s", res.Summary())
	default:
		fmt.Println(res.Summary())
		return nil
	}
}
