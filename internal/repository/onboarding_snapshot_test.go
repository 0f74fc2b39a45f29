package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restodesk/backoffice/internal/domain"
)

type snapshotStore interface {
	Get(ctx context.Context, restaurantID uint) (domain.OnboardingSnapshot, error)
	Save(ctx context.Context, snapshot domain.OnboardingSnapshot, expectedVersion int64) (domain.OnboardingSnapshot, error)
	Restore(ctx context.Context, snapshot domain.OnboardingSnapshot, claimedVersion int64) error
	Delete(ctx context.Context, restaurantID uint) error
	List(ctx context.Context) ([]domain.OnboardingSnapshot, error)
}

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func snapshotStores(t *testing.T) map[string]snapshotStore {
	_, client := newMiniredis(t)

	return map[string]snapshotStore{
		"redis":  NewRedisSnapshotStore(client, time.Hour),
		"memory": NewMemorySnapshotStore(),
	}
}

func TestSnapshotStore_VersionedSave(t *testing.T) {
	for name, store := range snapshotStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.Get(ctx, 7)
			assert.ErrorIs(t, err, ErrSnapshotNotFound)

			snap := domain.NewOnboardingSnapshot(7, time.Now().UTC())
			saved, err := store.Save(ctx, snap, 0)
			require.NoError(t, err)
			assert.Equal(t, int64(1), saved.Version)

			saved.Reviews.ReviewLink = "https://example.com/review"
			saved, err = store.Save(ctx, saved, saved.Version)
			require.NoError(t, err)
			assert.Equal(t, int64(2), saved.Version)

			stale := snap
			_, err = store.Save(ctx, stale, 1)
			assert.ErrorIs(t, err, ErrSnapshotVersionConflict)

			got, err := store.Get(ctx, 7)
			require.NoError(t, err)
			assert.Equal(t, "https://example.com/review", got.Reviews.ReviewLink)
			assert.Equal(t, int64(2), got.Version)

			require.NoError(t, store.Delete(ctx, 7))
			_, err = store.Get(ctx, 7)
			assert.ErrorIs(t, err, ErrSnapshotNotFound)
		})
	}
}

func TestSnapshotStore_RestoreUndoesClaim(t *testing.T) {
	for name, store := range snapshotStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			original, err := store.Save(ctx, domain.NewOnboardingSnapshot(9, time.Now().UTC()), 0)
			require.NoError(t, err)
			claimed, err := store.Save(ctx, original, original.Version)
			require.NoError(t, err)
			require.Equal(t, int64(2), claimed.Version)

			require.NoError(t, store.Restore(ctx, original, claimed.Version))
			got, err := store.Get(ctx, 9)
			require.NoError(t, err)
			assert.Equal(t, int64(1), got.Version)

			// a save after the claim wins over the restore
			claimed, err = store.Save(ctx, got, got.Version)
			require.NoError(t, err)
			_, err = store.Save(ctx, claimed, claimed.Version)
			require.NoError(t, err)
			assert.ErrorIs(t, store.Restore(ctx, original, claimed.Version), ErrSnapshotVersionConflict)
		})
	}
}

func TestSnapshotStore_List(t *testing.T) {
	for name, store := range snapshotStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, id := range []uint{3, 1, 2} {
				_, err := store.Save(ctx, domain.NewOnboardingSnapshot(id, time.Now().UTC()), 0)
				require.NoError(t, err)
			}

			list, err := store.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 3)
			assert.Equal(t, uint(1), list[0].RestaurantID)
			assert.Equal(t, uint(3), list[2].RestaurantID)
		})
	}
}

func TestRedisSnapshotStore_UsesDocumentedKeyAndTTL(t *testing.T) {
	mr, client := newMiniredis(t)
	store := NewRedisSnapshotStore(client, time.Hour)

	_, err := store.Save(context.Background(), domain.NewOnboardingSnapshot(12, time.Now().UTC()), 0)
	require.NoError(t, err)

	assert.True(t, mr.Exists("onboarding_12"))
	assert.Equal(t, time.Hour, mr.TTL("onboarding_12"))
}

func TestTokenDenylist(t *testing.T) {
	_, client := newMiniredis(t)

	lists := map[string]interface {
		Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
		IsRevoked(ctx context.Context, tokenID string) (bool, error)
	}{
		"redis":  NewRedisTokenDenylist(client),
		"memory": NewMemoryTokenDenylist(),
	}

	for name, list := range lists {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			revoked, err := list.IsRevoked(ctx, "abc")
			require.NoError(t, err)
			assert.False(t, revoked)

			require.NoError(t, list.Revoke(ctx, "abc", time.Minute))
			revoked, err = list.IsRevoked(ctx, "abc")
			require.NoError(t, err)
			assert.True(t, revoked)

			require.NoError(t, list.Revoke(ctx, "expired", 0))
			revoked, err = list.IsRevoked(ctx, "expired")
			require.NoError(t, err)
			assert.False(t, revoked)
		})
	}
}
