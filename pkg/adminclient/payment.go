package adminclient

import (
	"context"
	"net/http"
)

func (c *Client) GetPaymentSettings(ctx context.Context, restaurantID uint) (FeeConfig, error) {
	var fees FeeConfig
	err := c.do(ctx, http.MethodGet, restaurantPath(restaurantID, "payment"), nil, nil, &fees)

	return fees, err
}

func (c *Client) UpdatePaymentSettings(ctx context.Context, restaurantID uint, in FeeInput) (FeeConfig, error) {
	var fees FeeConfig
	err := c.do(ctx, http.MethodPut, restaurantPath(restaurantID, "payment"), nil, in, &fees)

	return fees, err
}

func (c *Client) CreatePaymentAccountLink(ctx context.Context, restaurantID uint) (PaymentAccountLink, error) {
	var link PaymentAccountLink
	err := c.do(ctx, http.MethodPost, restaurantPath(restaurantID, "payment", "account-link"), nil, nil, &link)

	return link, err
}

func (c *Client) SyncPaymentAccount(ctx context.Context, restaurantID uint) (FeeConfig, error) {
	var fees FeeConfig
	err := c.do(ctx, http.MethodPost, restaurantPath(restaurantID, "payment", "sync"), nil, nil, &fees)

	return fees, err
}
