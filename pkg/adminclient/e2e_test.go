package adminclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restodesk/backoffice/internal/api"
	"github.com/restodesk/backoffice/internal/config"
	"github.com/restodesk/backoffice/internal/db"
	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/realtime"
	"github.com/restodesk/backoffice/internal/repository/dao"
	"github.com/restodesk/backoffice/pkg/adminclient"
)

const (
	adminEmail    = "admin@restodesk.test"
	adminPassword = "s3cret!pass"
)

type okTester struct{}

func (okTester) Test(context.Context, string, string, string) error { return nil }

type okLinker struct{}

func (okLinker) CreateAccountLink(_ context.Context, _ domain.Restaurant, accountID string) (domain.PaymentAccountLink, error) {
	if accountID == "" {
		accountID = "acct_e2e"
	}
	return domain.PaymentAccountLink{AccountID: accountID, URL: "https://connect.example.com/" + accountID}, nil
}

func (okLinker) ChargesEnabled(context.Context, string) (bool, error) { return true, nil }

type okSender struct{}

func (okSender) Send(context.Context, string, string) error { return nil }

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	gormDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(gormDB))

	hub := realtime.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			PublicOrderingURL:  "https://order.example.com",
			JWTSigningKey:      "e2e-signing-key",
			TokenTTL:           time.Hour,
			SecretsKey:         "e2e-secrets-key",
			AllowedCORSDomains: []string{"*"},
		},
		Gin:        &config.GinConfig{Mode: "test"},
		Log:        &config.LogConfig{Level: "info"},
		Database:   &config.DatabaseConfig{Driver: "sqlite"},
		Redis:      &config.RedisConfig{},
		Broker:     &config.BrokerConfig{Driver: "none"},
		Stripe:     &config.StripeConfig{},
		Twilio:     &config.TwilioConfig{},
		POS:        &config.POSConfig{TestTimeout: time.Second},
		Onboarding: &config.OnboardingConfig{SnapshotTTL: time.Hour, StaleAfter: time.Hour},
		Bootstrap:  &config.BootstrapConfig{},
	}
	s, err := api.NewServer(conf, api.Dependencies{
		DB:        gormDB,
		Hub:       hub,
		POSTester: okTester{},
		Payments:  okLinker{},
		Messages:  okSender{},
	})
	require.NoError(t, err)
	require.NoError(t, s.Auth.EnsureSuperAdmin(context.Background(), adminEmail, adminPassword, "Admin"))

	srv := httptest.NewServer(s.Router)
	t.Cleanup(srv.Close)

	return srv
}

func loggedIn(t *testing.T, baseURL string, opts ...adminclient.Option) *adminclient.Client {
	t.Helper()

	c := adminclient.New(baseURL, opts...)
	_, err := c.Login(context.Background(), adminEmail, adminPassword, false)
	require.NoError(t, err)

	return c
}

func TestE2E_RememberMeUsesPersistentStore(t *testing.T) {
	srv := newBackend(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token.json")
	persistent := adminclient.NewFileStore(path)

	c := adminclient.New(srv.URL, adminclient.WithTokenStores(nil, persistent))
	res, err := c.Login(ctx, adminEmail, adminPassword, true)
	require.NoError(t, err)

	stored, err := persistent.Load()
	require.NoError(t, err)
	assert.Equal(t, res.Token, stored)

	again := adminclient.New(srv.URL, adminclient.WithTokenStores(nil, adminclient.NewFileStore(path)))
	me, err := again.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, adminEmail, me.Email)
}

func TestE2E_LogoutThenUnauthorized(t *testing.T) {
	srv := newBackend(t)
	ctx := context.Background()

	var redirects []string
	c := loggedIn(t, srv.URL, adminclient.WithUnauthorizedHandler(func(to string) { redirects = append(redirects, to) }))
	token, err := c.Token()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, c.Logout(ctx))
	token, _ = c.Token()
	assert.Empty(t, token)

	_, err = c.Me(ctx)
	assert.ErrorIs(t, err, adminclient.ErrUnauthorized)
	assert.Equal(t, []string{adminclient.LoginPath}, redirects)
}

func TestE2E_RestaurantTeamAndTables(t *testing.T) {
	srv := newBackend(t)
	ctx := context.Background()
	c := loggedIn(t, srv.URL)

	r, err := c.CreateRestaurant(ctx, adminclient.RestaurantInput{Name: "SDK Bistro", City: "Utrecht"})
	require.NoError(t, err)

	city := "Leiden"
	r, err = c.UpdateRestaurant(ctx, r.ID, adminclient.RestaurantUpdate{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Leiden", r.City)

	active := true
	page, err := c.ListRestaurants(ctx, adminclient.RestaurantQuery{Search: "sdk", IsActive: &active})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	m, err := c.CreateTeamMember(ctx, r.ID, adminclient.TeamMemberInput{Name: "Ann", Email: "ann@x.test", IsRestaurantAdmin: true})
	require.NoError(t, err)
	m, err = c.ToggleTeamMemberActive(ctx, r.ID, m.ID)
	require.NoError(t, err)
	assert.False(t, m.IsActive)

	tables, err := c.GenerateTables(ctx, r.ID, 2, []string{"Main"})
	require.NoError(t, err)
	require.Len(t, tables, 2)
	png, err := c.TableQRCode(ctx, r.ID, tables[1].ID, 64)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(png[:4]))

	err = c.DeleteRestaurant(ctx, r.ID, "sdk bistro")
	assert.True(t, adminclient.IsStatus(err, http.StatusBadRequest))
	require.NoError(t, c.DeleteRestaurant(ctx, r.ID, "SDK Bistro"))

	_, err = c.GetRestaurant(ctx, r.ID)
	assert.True(t, adminclient.IsStatus(err, http.StatusNotFound))
}

func TestE2E_OnboardingWithLiveFeed(t *testing.T) {
	srv := newBackend(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c := loggedIn(t, srv.URL)

	r, err := c.CreateRestaurant(ctx, adminclient.RestaurantInput{Name: "Live Diner"})
	require.NoError(t, err)
	s, err := c.GetOnboarding(ctx, r.ID)
	require.NoError(t, err)

	feed, err := c.WatchOnboarding(ctx, r.ID)
	require.NoError(t, err)
	first := <-feed
	require.NotNil(t, first.Snapshot)
	assert.Equal(t, s.Version, first.Snapshot.Version)

	s, err = c.NextStep(ctx, r.ID, s.Version)
	require.NoError(t, err)
	_, err = c.NextStep(ctx, r.ID, s.Version)
	assert.True(t, adminclient.IsStatus(err, http.StatusUnprocessableEntity))

	s, err = c.SavePersonnel(ctx, r.ID, s.Version, []adminclient.PersonnelEntry{
		{Name: "Lea", Email: "lea@diner.test", IsRestaurantAdmin: true},
	})
	require.NoError(t, err)
	s, err = c.NextStep(ctx, r.ID, s.Version)
	require.NoError(t, err)

	link, err := c.CreatePaymentLink(ctx, r.ID, s.Version)
	require.NoError(t, err)
	s, err = c.ConfirmPaymentLink(ctx, r.ID, link.Snapshot.Version)
	require.NoError(t, err)
	s, err = c.NextStep(ctx, r.ID, s.Version)
	require.NoError(t, err)

	s, err = c.SavePOSStep(ctx, r.ID, s.Version, adminclient.POSInput{Provider: "MPLUSKASSA", Username: "k", Password: "pw", Port: 34562})
	require.NoError(t, err)
	s, err = c.NextStep(ctx, r.ID, s.Version)
	require.NoError(t, err)

	s, err = c.SaveTablesStep(ctx, r.ID, s.Version, 2, []string{"Main"})
	require.NoError(t, err)
	s, err = c.NextStep(ctx, r.ID, s.Version)
	require.NoError(t, err)

	s, err = c.SaveReviewsStep(ctx, r.ID, s.Version, "https://g.page/r/live")
	require.NoError(t, err)
	s, err = c.NextStep(ctx, r.ID, s.Version)
	require.NoError(t, err)

	s, err = c.SaveMessagingStep(ctx, r.ID, s.Version, "+31611111111")
	require.NoError(t, err)
	s, err = c.ConnectMessaging(ctx, r.ID, s.Version)
	require.NoError(t, err)

	_, err = c.FinishOnboarding(ctx, r.ID, s.Version-1)
	assert.True(t, adminclient.IsStatus(err, http.StatusConflict))

	done, err := c.FinishOnboarding(ctx, r.ID, s.Version)
	require.NoError(t, err)
	assert.NotNil(t, done.OnboardedAt)
	assert.Len(t, done.Tables, 2)

	var removed bool
	for msg := range feed {
		if msg.Type == "removed" {
			removed = true
			assert.Equal(t, "completed", msg.Reason)
			break
		}
	}
	assert.True(t, removed)

	events, err := c.ListOnboardingEvents(ctx, r.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, events)
}
