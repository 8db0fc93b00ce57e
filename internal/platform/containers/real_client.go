package containers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultEndpoint is the default control-plane API endpoint.
const DefaultEndpoint = "https://containers.example.com/v1"

// RealClient implements PoolGateway against the control-plane HTTP API.
//
// The client issues one request per call and performs no retries: retry
// semantics for resizes belong to the remote system, and the orchestration
// layer decides how pool-scoped failures degrade.
type RealClient struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithEndpoint sets a custom API endpoint (useful for testing).
func WithEndpoint(endpoint string) ClientOption {
	return func(c *RealClient) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// NewRealClient creates a client authenticated with the given bearer token.
func NewRealClient(token string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		endpoint: DefaultEndpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListClusters returns the names of all clusters in the account.
func (c *RealClient) ListClusters(ctx context.Context) ([]string, error) {
	var out struct {
		Clusters []struct {
			Name string `json:"name"`
		} `json:"clusters"`
	}
	if err := c.get(ctx, "/clusters", &out); err != nil {
		return nil, fmt.Errorf("failed to list clusters: %w", err)
	}
	names := make([]string, 0, len(out.Clusters))
	for _, cl := range out.Clusters {
		names = append(names, cl.Name)
	}
	return names, nil
}

// ListPools returns every worker pool attached to the cluster.
func (c *RealClient) ListPools(ctx context.Context, cluster string) ([]WorkerPool, error) {
	var out struct {
		WorkerPools []WorkerPool `json:"workerPools"`
	}
	path := fmt.Sprintf("/clusters/%s/workerpools", url.PathEscape(cluster))
	if err := c.get(ctx, path, &out); err != nil {
		if IsNotFound(err) {
			return nil, clusterError(ErrClusterNotFound, cluster)
		}
		return nil, fmt.Errorf("cluster %q: %w", cluster, err)
	}
	return out.WorkerPools, nil
}

// GetPool returns a single worker pool by name.
func (c *RealClient) GetPool(ctx context.Context, cluster, pool string) (WorkerPool, error) {
	var out WorkerPool
	path := fmt.Sprintf("/clusters/%s/workerpools/%s", url.PathEscape(cluster), url.PathEscape(pool))
	if err := c.get(ctx, path, &out); err != nil {
		if IsNotFound(err) {
			return WorkerPool{}, poolError(ErrPoolNotFound, cluster, pool)
		}
		return WorkerPool{}, fmt.Errorf("cluster %q pool %q: %w", cluster, pool, err)
	}
	return out, nil
}

// ResizePool requests a new per-zone size for the pool.
func (c *RealClient) ResizePool(ctx context.Context, cluster, pool string, sizePerZone int) error {
	if sizePerZone < 0 {
		return poolError(ErrResizeRejected, cluster, pool)
	}
	body, err := json.Marshal(map[string]int{"sizePerZone": sizePerZone})
	if err != nil {
		return fmt.Errorf("failed to encode resize request: %w", err)
	}
	path := fmt.Sprintf("/clusters/%s/workerpools/%s/resize", url.PathEscape(cluster), url.PathEscape(pool))
	if err := c.post(ctx, path, body); err != nil {
		if IsNotFound(err) {
			return poolError(ErrPoolNotFound, cluster, pool)
		}
		return fmt.Errorf("cluster %q pool %q: %w", cluster, pool, err)
	}
	return nil
}

// ListWorkers returns all worker nodes of the cluster.
func (c *RealClient) ListWorkers(ctx context.Context, cluster string) ([]Worker, error) {
	var out struct {
		Workers []Worker `json:"workers"`
	}
	path := fmt.Sprintf("/clusters/%s/workers", url.PathEscape(cluster))
	if err := c.get(ctx, path, &out); err != nil {
		if IsNotFound(err) {
			return nil, clusterError(ErrClusterNotFound, cluster)
		}
		return nil, fmt.Errorf("cluster %q: %w", cluster, err)
	}
	return out.Workers, nil
}

// GetClusterState returns the raw status label of the cluster. Any failure
// collapses into ClusterStateUnknown; status probing is best-effort.
func (c *RealClient) GetClusterState(ctx context.Context, cluster string) string {
	var out struct {
		State string `json:"state"`
	}
	path := fmt.Sprintf("/clusters/%s", url.PathEscape(cluster))
	if err := c.get(ctx, path, &out); err != nil {
		return ClusterStateUnknown
	}
	if out.State == "" {
		return ClusterStateUnknown
	}
	return out.State
}

func (c *RealClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

func (c *RealClient) post(ctx context.Context, path string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

func (c *RealClient) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrClusterNotFound
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrResizeRejected, readAPIError(resp.Body))
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrRemoteUnavailable, resp.StatusCode)
	case resp.StatusCode >= 300:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, readAPIError(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// readAPIError extracts the error description from an API error body,
// falling back to the raw body when it is not the usual JSON envelope.
func readAPIError(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return "no error detail"
	}
	var env struct {
		Description string `json:"description"`
	}
	if json.Unmarshal(data, &env) == nil && env.Description != "" {
		return env.Description
	}
	return string(bytes.TrimSpace(data))
}
