// Package openexchange implements the rate provider port against the Open
// Exchange Rates historical API. Quotes come back as units of foreign
// currency per 1 USD; inversion for storage is the caller's concern.
package openexchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// Client calls the Open Exchange Rates historical endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Client. A nil httpClient gets a default with a 10s timeout.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type historicalResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FetchRates fetches historical quotes for the given currencies on the given
// date. The returned map is keyed by currency code; missing codes mean the
// provider does not quote them.
func (c *Client) FetchRates(ctx context.Context, currencies []string, date time.Time) (map[string]decimal.Decimal, error) {
	reqURL := fmt.Sprintf("%s/historical/%s.json?app_id=%s&symbols=%s",
		c.baseURL,
		date.Format("2006-01-02"),
		url.QueryEscape(c.apiKey),
		url.QueryEscape(strings.Join(currencies, ",")),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate request returned status %d", resp.StatusCode)
	}

	var body historicalResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rate response: %w", err)
	}
	if body.Rates == nil {
		return nil, fmt.Errorf("rate response contains no rates for %s", date.Format("2006-01-02"))
	}
	return body.Rates, nil
}
