package adminclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) ListPOSProviders(ctx context.Context) ([]POSProviderInfo, error) {
	var providers []POSProviderInfo
	err := c.do(ctx, http.MethodGet, adminPrefix+"/pos/providers", nil, nil, &providers)

	return providers, err
}

// PreviewPOSBaseURL asks the server which endpoint a provider/port pair
// resolves to.
func (c *Client) PreviewPOSBaseURL(ctx context.Context, provider string, port int, baseURL string) (string, error) {
	query := url.Values{"provider": {provider}}
	if port > 0 {
		query.Set("port", strconv.Itoa(port))
	}
	if baseURL != "" {
		query.Set("base_url", baseURL)
	}

	var res struct {
		BaseURL string `json:"base_url"`
	}
	if err := c.do(ctx, http.MethodGet, adminPrefix+"/pos/base-url", query, nil, &res); err != nil {
		return "", err
	}

	return res.BaseURL, nil
}

func (c *Client) GetPOS(ctx context.Context, restaurantID uint) (POSConfig, error) {
	var pos POSConfig
	err := c.do(ctx, http.MethodGet, restaurantPath(restaurantID, "pos"), nil, nil, &pos)

	return pos, err
}

func (c *Client) SavePOS(ctx context.Context, restaurantID uint, in POSInput) (POSConfig, error) {
	var pos POSConfig
	err := c.do(ctx, http.MethodPut, restaurantPath(restaurantID, "pos"), nil, in, &pos)

	return pos, err
}

// TestPOS reports a failed connection through POSTestResult.OK, not err.
func (c *Client) TestPOS(ctx context.Context, restaurantID uint, in POSInput) (POSTestResult, error) {
	var res POSTestResult
	err := c.do(ctx, http.MethodPost, restaurantPath(restaurantID, "pos", "test"), nil, in, &res)

	return res, err
}
