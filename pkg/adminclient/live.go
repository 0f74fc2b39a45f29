package adminclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WatchOnboarding subscribes to live snapshot changes of one restaurant.
// The first message is the current snapshot. The channel is closed when ctx
// ends or the connection drops.
func (c *Client) WatchOnboarding(ctx context.Context, restaurantID uint) (<-chan LiveMessage, error) {
	target := c.baseURL + onboardingPath(restaurantID, "ws")
	switch {
	case strings.HasPrefix(target, "https://"):
		target = "wss://" + strings.TrimPrefix(target, "https://")
	case strings.HasPrefix(target, "http://"):
		target = "ws://" + strings.TrimPrefix(target, "http://")
	}

	header := http.Header{}
	token, err := c.tokens.load()
	if err != nil {
		return nil, fmt.Errorf("c.tokens.load -> %w", err)
	}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	dialer := websocket.Dialer{HandshakeTimeout: c.http.Timeout}
	conn, res, err := dialer.DialContext(ctx, target, header)
	if err != nil {
		if res != nil {
			defer res.Body.Close()
			body, _ := io.ReadAll(res.Body)
			if res.StatusCode == http.StatusUnauthorized {
				c.unauthorized()
			}
			return nil, parseAPIError(res.StatusCode, body)
		}
		return nil, fmt.Errorf("dialer.DialContext -> %w", err)
	}

	out := make(chan LiveMessage, 8)
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		_ = conn.Close()
	}()
	go func() {
		defer close(out)
		defer close(done)
		for {
			var msg LiveMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					zap.L().Debug("onboarding feed closed", zap.Uint("restaurant_id", restaurantID), zap.Error(err))
				}
				return
			}
			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
