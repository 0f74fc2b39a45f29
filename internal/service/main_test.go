package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/restodesk/backoffice/internal/db"
	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/events"
	"github.com/restodesk/backoffice/internal/pkg/secretbox"
	"github.com/restodesk/backoffice/internal/repository"
	"github.com/restodesk/backoffice/internal/repository/dao"
)

const testOrderingURL = "https://order.example.com"

type testEnv struct {
	restaurants  *repository.RestaurantRepository
	members      *repository.TeamMemberRepository
	tables       *repository.TableRepository
	transactions *repository.TransactionRepository
	events       *repository.OnboardingEventRepository
	snapshots    *repository.MemorySnapshotStore
	published    *events.Recorder
	sealer       *secretbox.Sealer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gormDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "service.db"))
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(gormDB))
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	sealer, err := secretbox.New("test-passphrase")
	require.NoError(t, err)

	return &testEnv{
		restaurants:  repository.NewRestaurantRepository(dao.NewRestaurantDAO(gormDB)),
		members:      repository.NewTeamMemberRepository(dao.NewTeamMemberDAO(gormDB)),
		tables:       repository.NewTableRepository(dao.NewTableDAO(gormDB)),
		transactions: repository.NewTransactionRepository(dao.NewTransactionDAO(gormDB)),
		events:       repository.NewOnboardingEventRepository(dao.NewOnboardingEventDAO(gormDB)),
		snapshots:    repository.NewMemorySnapshotStore(),
		published:    events.NewRecorder(),
		sealer:       sealer,
	}
}

func (e *testEnv) seedRestaurant(t *testing.T, name string) domain.Restaurant {
	t.Helper()

	r, err := NewRestaurantService(e.restaurants, e.snapshots, e.published, testOrderingURL).
		Create(context.Background(), domain.Restaurant{Name: name, City: "Utrecht", IsActive: true})
	require.NoError(t, err)

	return r
}

type fakeLinker struct {
	accountID string
	enabled   bool
	err       error
	calls     int
}

func (f *fakeLinker) CreateAccountLink(_ context.Context, _ domain.Restaurant, accountID string) (domain.PaymentAccountLink, error) {
	f.calls++
	if f.err != nil {
		return domain.PaymentAccountLink{}, f.err
	}
	if accountID == "" {
		accountID = f.accountID
	}

	return domain.PaymentAccountLink{
		AccountID: accountID,
		URL:       "https://connect.example.com/setup/" + accountID,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (f *fakeLinker) ChargesEnabled(_ context.Context, _ string) (bool, error) {
	return f.enabled, f.err
}

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) Send(_ context.Context, to, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)

	return nil
}

type fakeTester struct {
	err      error
	lastURL  string
	lastUser string
	lastPass string
}

func (f *fakeTester) Test(_ context.Context, baseURL, username, secret string) error {
	f.lastURL, f.lastUser, f.lastPass = baseURL, username, secret
	return f.err
}

type fakeNotifier struct {
	mu      sync.Mutex
	updates []domain.OnboardingSnapshot
	removed []string
}

func (f *fakeNotifier) SnapshotUpdated(snapshot domain.OnboardingSnapshot) {
	f.mu.Lock()
	f.updates = append(f.updates, snapshot)
	f.mu.Unlock()
}

func (f *fakeNotifier) SnapshotRemoved(_ uint, reason string) {
	f.mu.Lock()
	f.removed = append(f.removed, reason)
	f.mu.Unlock()
}

type countingRecorder struct {
	transitions map[string]int
	failures    map[string]int
	posTests    map[bool]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		transitions: make(map[string]int),
		failures:    make(map[string]int),
		posTests:    make(map[bool]int),
	}
}

func (c *countingRecorder) OnboardingTransition(transition string, err error) {
	c.transitions[transition]++
	if err != nil {
		c.failures[transition]++
	}
}

func (c *countingRecorder) POSTest(_ string, ok bool) {
	c.posTests[ok]++
}

var errUpstream = errors.New("upstream down")
