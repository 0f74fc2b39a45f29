package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/restodesk/backoffice/internal/api/handler/v1/response"
	"github.com/restodesk/backoffice/internal/config"
	"github.com/restodesk/backoffice/internal/db"
	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/events"
	"github.com/restodesk/backoffice/internal/realtime"
	"github.com/restodesk/backoffice/internal/repository/dao"
)

const (
	adminEmail    = "admin@restodesk.test"
	adminPassword = "s3cret!pass"
)

type stubTester struct {
	err error
}

func (s *stubTester) Test(context.Context, string, string, string) error {
	return s.err
}

type stubLinker struct {
	mu      sync.Mutex
	enabled bool
	err     error
}

func (s *stubLinker) CreateAccountLink(_ context.Context, _ domain.Restaurant, accountID string) (domain.PaymentAccountLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return domain.PaymentAccountLink{}, s.err
	}
	if accountID == "" {
		accountID = "acct_test"
	}

	return domain.PaymentAccountLink{
		AccountID: accountID,
		URL:       "https://connect.example.com/setup/" + accountID,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (s *stubLinker) ChargesEnabled(context.Context, string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enabled, s.err
}

type stubSender struct {
	mu   sync.Mutex
	sent []string
}

func (s *stubSender) Send(_ context.Context, to, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, to)

	return nil
}

type testServer struct {
	*Server
	tester    *stubTester
	linker    *stubLinker
	sender    *stubSender
	published *events.Recorder
}

func newTestConfig() *config.AppConfig {
	return &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			Port:               "0",
			BaseURL:            "localhost",
			PublicOrderingURL:  "https://order.example.com",
			AllowedCORSDomains: []string{"http://localhost:3000"},
			JWTSigningKey:      "test-signing-key",
			TokenTTL:           time.Hour,
			SecretsKey:         "test-secrets-key",
		},
		Gin:        &config.GinConfig{Mode: "test"},
		Log:        &config.LogConfig{Level: "info"},
		Database:   &config.DatabaseConfig{Driver: "sqlite"},
		Redis:      &config.RedisConfig{},
		Broker:     &config.BrokerConfig{Driver: "none"},
		Stripe:     &config.StripeConfig{},
		Twilio:     &config.TwilioConfig{},
		POS:        &config.POSConfig{TestTimeout: time.Second},
		Onboarding: &config.OnboardingConfig{SnapshotTTL: time.Hour, StaleAfter: time.Hour, SweepSchedule: "@daily"},
		Bootstrap:  &config.BootstrapConfig{},
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gormDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(gormDB))
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	hub := realtime.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	ts := &testServer{
		tester:    &stubTester{},
		linker:    &stubLinker{enabled: true},
		sender:    &stubSender{},
		published: events.NewRecorder(),
	}
	s, err := NewServer(newTestConfig(), Dependencies{
		DB:        gormDB,
		Publisher: ts.published,
		Hub:       hub,
		POSTester: ts.tester,
		Payments:  ts.linker,
		Messages:  ts.sender,
	})
	require.NoError(t, err)
	ts.Server = s

	require.NoError(t, s.Auth.EnsureSuperAdmin(context.Background(), adminEmail, adminPassword, "Admin"))

	return ts
}

func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req)

	return rec
}

func (ts *testServer) login(t *testing.T, email, password string) string {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res response.LoginResponse
	decode(t, rec, &res)
	require.NotEmpty(t, res.Token)

	return res.Token
}

func (ts *testServer) adminToken(t *testing.T) string {
	return ts.login(t, adminEmail, adminPassword)
}

func (ts *testServer) createRestaurant(t *testing.T, token, name string) domain.Restaurant {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/v1/super-admin/restaurants", token, map[string]interface{}{
		"name": name,
		"city": "Amsterdam",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var r domain.Restaurant
	decode(t, rec, &r)

	return r
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) response.Err {
	t.Helper()

	var e response.Err
	decode(t, rec, &e)

	return e
}

var errUpstream = errors.New("upstream down")

// newCookieRequest authenticates through the auth_token cookie instead of the
// Authorization header.
func newCookieRequest(method, path, token string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	req.AddCookie(&http.Cookie{Name: response.AuthCookie, Value: token})

	return req, httptest.NewRecorder()
}
