package adminclient

import (
	"context"
	"net/http"
	"strconv"
)

func memberPath(restaurantID, id uint, parts ...string) string {
	return restaurantPath(restaurantID, append([]string{"team", strconv.FormatUint(uint64(id), 10)}, parts...)...)
}

func (c *Client) ListTeam(ctx context.Context, restaurantID uint) ([]TeamMember, error) {
	var members []TeamMember
	err := c.do(ctx, http.MethodGet, restaurantPath(restaurantID, "team"), nil, nil, &members)

	return members, err
}

func (c *Client) CreateTeamMember(ctx context.Context, restaurantID uint, in TeamMemberInput) (TeamMember, error) {
	var m TeamMember
	err := c.do(ctx, http.MethodPost, restaurantPath(restaurantID, "team"), nil, in, &m)

	return m, err
}

func (c *Client) UpdateTeamMember(ctx context.Context, restaurantID, id uint, in TeamMemberInput) (TeamMember, error) {
	var m TeamMember
	err := c.do(ctx, http.MethodPut, memberPath(restaurantID, id), nil, in, &m)

	return m, err
}

func (c *Client) ToggleTeamMemberActive(ctx context.Context, restaurantID, id uint) (TeamMember, error) {
	var m TeamMember
	err := c.do(ctx, http.MethodPost, memberPath(restaurantID, id, "toggle-active"), nil, nil, &m)

	return m, err
}

func (c *Client) DeleteTeamMember(ctx context.Context, restaurantID, id uint) error {
	return c.do(ctx, http.MethodDelete, memberPath(restaurantID, id), nil, nil, nil)
}
