// Package pricing estimates worker costs for the cost command.
//
// Prices are fetched from the control-plane pricing API, keyed by machine
// type. The calculator turns a cluster's pool topology into current vs
// hibernated monthly totals; the formatter renders them for humans.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// PricingPath is the pricing API path relative to the endpoint.
const PricingPath = "/pricing/machinetypes"

// Price is the monthly cost of one worker of a machine type.
type Price struct {
	MachineType string  `json:"machineType"`
	MonthlyNet  float64 `json:"monthlyNet"`
	Currency    string  `json:"currency"`
}

// Sheet maps machine types to their monthly per-worker price.
type Sheet struct {
	Currency string
	ByType   map[string]float64
}

// Client fetches pricing data from the control-plane API.
//
// Pricing reads are idempotent, so unlike the pool gateway this client
// retries transient failures.
type Client struct {
	endpoint   string
	token      string
	httpClient *retryablehttp.Client
}

// NewClient creates a pricing client for the given endpoint and token.
func NewClient(endpoint, token string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 5 * time.Second
	rc.Logger = nil
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: rc,
	}
}

// FetchSheet fetches current per-machine-type pricing.
func (c *Client) FetchSheet(ctx context.Context) (*Sheet, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+PricingPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pricing: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pricing API returned status %d", resp.StatusCode)
	}

	var out struct {
		Prices []Price `json:"prices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode pricing response: %w", err)
	}

	sheet := &Sheet{ByType: make(map[string]float64, len(out.Prices))}
	for _, p := range out.Prices {
		sheet.ByType[p.MachineType] = p.MonthlyNet
		if sheet.Currency == "" {
			sheet.Currency = p.Currency
		}
	}
	return sheet, nil
}
