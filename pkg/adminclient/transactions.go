package adminclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

func (q TransactionQuery) values(withRestaurant bool) url.Values {
	query := url.Values{}
	if withRestaurant && q.RestaurantID > 0 {
		query.Set("restaurant_id", strconv.FormatUint(uint64(q.RestaurantID), 10))
	}
	if q.Status != "" {
		query.Set("status", q.Status)
	}
	if !q.From.IsZero() {
		query.Set("from", q.From.Format(time.RFC3339))
	}
	if !q.To.IsZero() {
		query.Set("to", q.To.Format(time.RFC3339))
	}
	setPaging(query, q.Page, q.PageSize)

	return query
}

// ListTransactions lists across restaurants. Set RestaurantID to narrow it.
func (c *Client) ListTransactions(ctx context.Context, q TransactionQuery) (TransactionList, error) {
	var list TransactionList
	err := c.do(ctx, http.MethodGet, adminPrefix+"/transactions", q.values(true), nil, &list)

	return list, err
}

func (c *Client) ListRestaurantTransactions(ctx context.Context, restaurantID uint, q TransactionQuery) (TransactionList, error) {
	var list TransactionList
	err := c.do(ctx, http.MethodGet, restaurantPath(restaurantID, "transactions"), q.values(false), nil, &list)

	return list, err
}

func (c *Client) TransactionSummary(ctx context.Context, q TransactionQuery) (TransactionSummary, error) {
	var summary TransactionSummary
	err := c.do(ctx, http.MethodGet, adminPrefix+"/transactions/summary", q.values(true), nil, &summary)

	return summary, err
}
