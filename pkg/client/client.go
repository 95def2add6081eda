package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kurihiro0119/codespaces-dashboard/internal/domain"
)

// Client is the API client for the dashboard
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetStats retrieves the whole-period summary
func (c *Client) GetStats(ctx context.Context) (*domain.SummaryStats, error) {
	var stats domain.SummaryStats
	if err := c.get(ctx, "/api/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetTrends retrieves the weekly rollups
func (c *Client) GetTrends(ctx context.Context) ([]domain.WeeklyRollup, error) {
	var rollups []domain.WeeklyRollup
	if err := c.get(ctx, "/api/trends", &rollups); err != nil {
		return nil, err
	}
	return rollups, nil
}

// GetDaily retrieves the raw daily series
func (c *Client) GetDaily(ctx context.Context) ([]domain.DailyMetric, error) {
	var metrics []domain.DailyMetric
	if err := c.get(ctx, "/api/daily", &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

// GetGovernance retrieves the governance snapshot
func (c *Client) GetGovernance(ctx context.Context) (*domain.GovernanceSnapshot, error) {
	var snapshot domain.GovernanceSnapshot
	if err := c.get(ctx, "/api/governance", &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// HealthCheck checks if the API is healthy. The status is returned alongside
// the error when the server answers with anything other than "healthy".
func (c *Client) HealthCheck(ctx context.Context) (*domain.HealthStatus, error) {
	var status domain.HealthStatus
	if err := c.get(ctx, "/health", &status); err != nil {
		return nil, err
	}
	if status.Status != domain.HealthStatusHealthy {
		return &status, fmt.Errorf("unhealthy status: %s", status.Status)
	}
	return &status, nil
}

func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s - %s", resp.Status, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
