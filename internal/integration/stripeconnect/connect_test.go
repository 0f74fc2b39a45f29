package stripeconnect

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"

	"github.com/restodesk/backoffice/internal/config"
	"github.com/restodesk/backoffice/internal/domain"
)

func TestLinkerWithoutKey(t *testing.T) {
	l := New(&config.StripeConfig{})

	_, err := l.CreateAccountLink(context.Background(), domain.Restaurant{ID: 1}, "")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = l.ChargesEnabled(context.Background(), "acct_1")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

// newFakeStripe serves the three account endpoints the linker calls and
// counts how many accounts were opened.
func newFakeStripe(t *testing.T, created *int) *Linker {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/accounts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "express", r.PostForm.Get("type"))
		assert.Equal(t, "7", r.PostForm.Get("metadata[restaurant_id]"))
		*created++
		fmt.Fprint(w, `{"id":"acct_new","object":"account"}`)
	})
	mux.HandleFunc("/v1/account_links", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		fmt.Fprintf(w, `{"object":"account_link","url":"https://connect.stripe.test/%s","expires_at":1700000000}`, r.PostForm.Get("account"))
	})
	mux.HandleFunc("/v1/accounts/acct_new", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		fmt.Fprint(w, `{"id":"acct_new","object":"account","charges_enabled":true}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
		MaxNetworkRetries: stripe.Int64(0),
	})
	api := &client.API{}
	api.Init("sk_test_backoffice", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})

	return &Linker{api: api, refreshURL: "https://admin.test/refresh", returnURL: "https://admin.test/return"}
}

func TestLinkerCreatesAccountThenLink(t *testing.T) {
	var created int
	l := newFakeStripe(t, &created)

	link, err := l.CreateAccountLink(context.Background(), domain.Restaurant{ID: 7, Email: "chef@example.com"}, "")
	require.NoError(t, err)
	assert.Equal(t, "acct_new", link.AccountID)
	assert.Equal(t, "https://connect.stripe.test/acct_new", link.URL)
	assert.Equal(t, int64(1700000000), link.ExpiresAt.Unix())
	assert.Equal(t, 1, created)

	_, err = l.CreateAccountLink(context.Background(), domain.Restaurant{ID: 7}, "acct_new")
	require.NoError(t, err)
	assert.Equal(t, 1, created, "an existing account is reused")

	enabled, err := l.ChargesEnabled(context.Background(), "acct_new")
	require.NoError(t, err)
	assert.True(t, enabled)
}
