package adminclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()

	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, &auth
}

func TestClient_UnauthorizedClearsBothStores(t *testing.T) {
	srv, auth := stubServer(t, http.StatusUnauthorized, `{"detail":"authentication required"}`)
	session, persistent := NewMemoryStore(), NewMemoryStore()
	require.NoError(t, session.Save("s"))
	require.NoError(t, persistent.Save("p"))

	var redirect string
	c := New(srv.URL, WithTokenStores(session, persistent), WithUnauthorizedHandler(func(to string) { redirect = to }))

	_, err := c.ListTeam(context.Background(), 1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, "Bearer s", *auth)
	assert.Equal(t, LoginPath, redirect)
	token, _ := c.Token()
	assert.Empty(t, token)
	p, _ := persistent.Load()
	assert.Empty(t, p)
}

func TestClient_UnauthorizedWithBrokenBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// promise more than is sent so reading the body fails
		w.Header().Set("Content-Length", "100")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail"`))
	}))
	t.Cleanup(srv.Close)

	session, persistent := NewMemoryStore(), NewMemoryStore()
	require.NoError(t, session.Save("s"))
	require.NoError(t, persistent.Save("p"))

	var redirect string
	c := New(srv.URL, WithTokenStores(session, persistent), WithUnauthorizedHandler(func(to string) { redirect = to }))

	_, err := c.Me(context.Background())

	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, LoginPath, redirect)
	s, _ := session.Load()
	assert.Empty(t, s)
	p, _ := persistent.Load()
	assert.Empty(t, p)
}

func TestClient_APIErrorDetail(t *testing.T) {
	srv, _ := stubServer(t, http.StatusUnprocessableEntity, `{"detail":"add at least one team member","step":1}`)
	c := New(srv.URL)

	_, err := c.NextStep(context.Background(), 3, 2)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "add at least one team member", apiErr.Detail)
	require.NotNil(t, apiErr.Step)
	assert.Equal(t, 1, *apiErr.Step)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestClient_APIErrorWithoutJSON(t *testing.T) {
	srv, _ := stubServer(t, http.StatusBadGateway, "<html>bad gateway</html>")
	c := New(srv.URL)

	_, err := c.GetRestaurant(context.Background(), 1)

	assert.True(t, IsStatus(err, http.StatusBadGateway))
	assert.Contains(t, err.Error(), "bad gateway")
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	srv, auth := stubServer(t, http.StatusOK, `[]`)
	c := New(srv.URL + "/")

	members, err := c.ListTeam(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, members)
	assert.Empty(t, *auth)
}
