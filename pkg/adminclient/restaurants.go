package adminclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) ListRestaurants(ctx context.Context, q RestaurantQuery) (RestaurantPage, error) {
	query := url.Values{}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.IsActive != nil {
		query.Set("is_active", strconv.FormatBool(*q.IsActive))
	}
	setPaging(query, q.Page, q.PageSize)

	var page RestaurantPage
	err := c.do(ctx, http.MethodGet, adminPrefix+"/restaurants", query, nil, &page)

	return page, err
}

func (c *Client) GetRestaurant(ctx context.Context, id uint) (Restaurant, error) {
	var r Restaurant
	err := c.do(ctx, http.MethodGet, restaurantPath(id), nil, nil, &r)

	return r, err
}

func (c *Client) CreateRestaurant(ctx context.Context, in RestaurantInput) (Restaurant, error) {
	var r Restaurant
	err := c.do(ctx, http.MethodPost, adminPrefix+"/restaurants", nil, in, &r)

	return r, err
}

func (c *Client) UpdateRestaurant(ctx context.Context, id uint, in RestaurantUpdate) (Restaurant, error) {
	var r Restaurant
	err := c.do(ctx, http.MethodPatch, restaurantPath(id), nil, in, &r)

	return r, err
}

func (c *Client) ToggleRestaurantActive(ctx context.Context, id uint) (Restaurant, error) {
	var r Restaurant
	err := c.do(ctx, http.MethodPost, restaurantPath(id, "toggle-active"), nil, nil, &r)

	return r, err
}

// DeleteRestaurant needs the exact restaurant name as confirmation.
func (c *Client) DeleteRestaurant(ctx context.Context, id uint, confirmName string) error {
	body := map[string]string{"confirm_name": confirmName}
	return c.do(ctx, http.MethodDelete, restaurantPath(id), nil, body, nil)
}

func setPaging(query url.Values, page, pageSize int) {
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}
}
