package handlers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/k8snooze/internal/orchestration"
)

func TestLoadConfig_ArgumentWinsOverConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "k8snooze.yaml")
	content := "cluster_name: from-config\napi_endpoint: https://api.example.com/v1\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	_, cluster, err := loadConfig(configPath, "from-arg")
	require.NoError(t, err)
	assert.Equal(t, "from-arg", cluster)

	_, cluster, err = loadConfig(configPath, "")
	require.NoError(t, err)
	assert.Equal(t, "from-config", cluster)
}

func TestLoadConfig_MissingExplicitFileFails(t *testing.T) {
	_, _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), "")
	require.Error(t, err)
}

func TestNewGateway_RequiresToken(t *testing.T) {
	t.Setenv("K8SNOOZE_API_TOKEN", "")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "k8snooze.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("api_endpoint: https://api.example.com/v1\n"), 0o644))

	cfg, _, err := loadConfig(configPath, "")
	require.NoError(t, err)

	_, err = newGateway(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "K8SNOOZE_API_TOKEN")

	t.Setenv("K8SNOOZE_API_TOKEN", "secret")
	gw, err := newGateway(cfg)
	require.NoError(t, err)
	assert.NotNil(t, gw)
}

func TestRenderResult_FailureNamesPools(t *testing.T) {
	res := &orchestration.Result{Cluster: "demo"}
	res.Failed = append(res.Failed, orchestration.PoolFailure{Pool: "pool-b", Err: errors.New("resize rejected")})
	res.Outcome = orchestration.OutcomeFailure

	err := renderResult(res)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demo")
	assert.Contains(t, err.Error(), "pool-b")
}

func TestRenderResult_WarningExitsClean(t *testing.T) {
	res := &orchestration.Result{
		Cluster:  "demo",
		Outcome:  orchestration.OutcomeWarning,
		Warnings: []string{"drain did not converge"},
	}
	assert.NoError(t, renderResult(res))
}

func TestRenderResult_Success(t *testing.T) {
	assert.NoError(t, renderResult(&orchestration.Result{Cluster: "demo"}))
}
