package adminclient

import (
	"context"
	"net/http"
)

// Login stores the returned token in the persistent store when remember is
// set, otherwise in the session store.
func (c *Client) Login(ctx context.Context, email, password string, remember bool) (LoginResponse, error) {
	var res LoginResponse
	body := map[string]interface{}{"email": email, "password": password, "remember_me": remember}
	if err := c.do(ctx, http.MethodPost, apiPrefix+"/auth/login", nil, body, &res); err != nil {
		return LoginResponse{}, err
	}
	if err := c.tokens.save(res.Token, remember); err != nil {
		return LoginResponse{}, err
	}

	return res, nil
}

// Logout revokes the token server side and forgets it locally. Local
// stores are cleared even when the call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, apiPrefix+"/auth/logout", nil, nil, nil)
	if clearErr := c.tokens.clear(); clearErr != nil && err == nil {
		err = clearErr
	}

	return err
}

func (c *Client) Me(ctx context.Context) (User, error) {
	var u User
	err := c.do(ctx, http.MethodGet, apiPrefix+"/auth/me", nil, nil, &u)

	return u, err
}

func (c *Client) Signup(ctx context.Context, in SignupInput) (User, error) {
	var u User
	err := c.do(ctx, http.MethodPost, apiPrefix+"/auth/signup", nil, in, &u)

	return u, err
}

// ListUsers is reserved to super admins.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	err := c.do(ctx, http.MethodGet, adminPrefix+"/users", nil, nil, &users)

	return users, err
}
