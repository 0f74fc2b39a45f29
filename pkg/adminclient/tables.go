package adminclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func tablePath(restaurantID, id uint, parts ...string) string {
	return restaurantPath(restaurantID, append([]string{"tables", strconv.FormatUint(uint64(id), 10)}, parts...)...)
}

func (c *Client) ListTables(ctx context.Context, restaurantID uint) ([]Table, error) {
	var tables []Table
	err := c.do(ctx, http.MethodGet, restaurantPath(restaurantID, "tables"), nil, nil, &tables)

	return tables, err
}

// CreateTable adds one table. A zero number lets the server pick the next.
func (c *Client) CreateTable(ctx context.Context, restaurantID uint, in TableInput) (Table, error) {
	var t Table
	err := c.do(ctx, http.MethodPost, restaurantPath(restaurantID, "tables"), nil, in, &t)

	return t, err
}

func (c *Client) GenerateTables(ctx context.Context, restaurantID uint, count int, sections []string) ([]Table, error) {
	body := map[string]interface{}{"count": count, "sections": sections}

	var tables []Table
	err := c.do(ctx, http.MethodPost, restaurantPath(restaurantID, "tables", "generate"), nil, body, &tables)

	return tables, err
}

func (c *Client) UpdateTable(ctx context.Context, restaurantID, id uint, in TableInput) (Table, error) {
	var t Table
	err := c.do(ctx, http.MethodPut, tablePath(restaurantID, id), nil, in, &t)

	return t, err
}

func (c *Client) ToggleTableActive(ctx context.Context, restaurantID, id uint) (Table, error) {
	var t Table
	err := c.do(ctx, http.MethodPost, tablePath(restaurantID, id, "toggle-active"), nil, nil, &t)

	return t, err
}

func (c *Client) DeleteTable(ctx context.Context, restaurantID, id uint) error {
	return c.do(ctx, http.MethodDelete, tablePath(restaurantID, id), nil, nil, nil)
}

// TableQRCode returns the PNG encoding the table link. size 0 uses the
// server default.
func (c *Client) TableQRCode(ctx context.Context, restaurantID, id uint, size int) ([]byte, error) {
	query := url.Values{}
	if size > 0 {
		query.Set("size", strconv.Itoa(size))
	}

	return c.raw(ctx, http.MethodGet, tablePath(restaurantID, id, "qr.png"), query, nil)
}
