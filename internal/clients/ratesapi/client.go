// Package ratesapi is an HTTP client for the exchangerate-api.com v6 API.
package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// Client fetches latest conversion rates from exchangerate-api.com.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ providers.RateProvider = (*Client)(nil)

// latestResponse is the shape of GET /{apiKey}/latest/{base}.
type latestResponse struct {
	Result          string                     `json:"result"`
	ErrorType       string                     `json:"error-type,omitempty"`
	BaseCode        string                     `json:"base_code"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// NewClient creates a rates API client. A non-positive timeout falls back to
// a sane default so a misconfigured value cannot hang requests forever.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchLatestRates returns the full conversion table relative to base:
// currency code -> units of that currency per 1 unit of base.
func (c *Client) FetchLatestRates(ctx context.Context, base domain.Currency) (map[domain.Currency]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create rates request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates API returned non-OK status: %d", resp.StatusCode)
	}

	var apiResp latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}

	if apiResp.Result != "success" {
		return nil, fmt.Errorf("rates API reported failure: %s", apiResp.ErrorType)
	}
	if len(apiResp.ConversionRates) == 0 {
		return nil, fmt.Errorf("rates API returned no conversion rates")
	}

	rates := make(map[domain.Currency]decimal.Decimal, len(apiResp.ConversionRates))
	for code, rate := range apiResp.ConversionRates {
		rates[domain.Currency(code)] = rate
	}
	return rates, nil
}
