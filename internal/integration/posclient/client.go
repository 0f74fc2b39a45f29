// Package posclient checks whether a POS endpoint accepts the stored
// credentials.
package posclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrUnreachable         = errors.New("POS endpoint is unreachable")
	ErrRejectedCredentials = errors.New("POS rejected the credentials")
	ErrUnexpectedStatus    = errors.New("POS answered with an unexpected status")
)

const defaultTimeout = 10 * time.Second

type HTTPTester struct {
	client *http.Client
}

func NewHTTPTester(timeout time.Duration, client *http.Client) *HTTPTester {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	} else {
		client.Timeout = timeout
	}

	return &HTTPTester{client: client}
}

// Test performs one authenticated GET against baseURL. Any 2xx or 3xx
// answer counts as success.
func (t *HTTPTester) Test(ctx context.Context, baseURL, username, secret string) error {
	endpoint := strings.TrimRight(strings.TrimSpace(baseURL), "/") + "/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.SetBasicAuth(username, secret)
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrRejectedCredentials
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return nil
}
