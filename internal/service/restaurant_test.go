package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/events"
)

func TestRestaurantService_CreateDefaults(t *testing.T) {
	env := newTestEnv(t)

	r := env.seedRestaurant(t, "  Bistro  ")
	assert.Equal(t, "Bistro", r.Name)
	assert.Equal(t, "EUR", r.Fees.Currency)
	assert.Equal(t, domain.MessagingStatusPending, r.MessagingGroup.Status)
}

func TestRestaurantService_UpdateKeepsUntouchedFields(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRestaurantService(env.restaurants, env.snapshots, env.published, testOrderingURL)
	ctx := context.Background()
	r := env.seedRestaurant(t, "Bistro")

	city := "Amsterdam"
	updated, err := svc.Update(ctx, r.ID, domain.RestaurantUpdate{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Amsterdam", updated.City)
	assert.Equal(t, "Bistro", updated.Name)

	blank := "   "
	_, err = svc.Update(ctx, r.ID, domain.RestaurantUpdate{Name: &blank})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.Update(ctx, 404, domain.RestaurantUpdate{City: &city})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestRestaurantService_ToggleActiveOnlyFlipsFlag(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRestaurantService(env.restaurants, env.snapshots, env.published, testOrderingURL)
	tables := NewTableService(env.tables, env.restaurants, testOrderingURL)
	ctx := context.Background()
	r := env.seedRestaurant(t, "Bistro")

	_, err := tables.Generate(ctx, r.ID, 3, []string{"Main"})
	require.NoError(t, err)

	archived, err := svc.ToggleActive(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, archived.IsActive)
	assert.Len(t, archived.Tables, 3)
	assert.Contains(t, archived.Tables[0].Link, testOrderingURL)

	active, err := svc.ToggleActive(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, active.IsActive)

	published := env.published.Events()
	require.Len(t, published, 2)
	assert.Equal(t, "restaurant.archived", published[0].RoutingKey())
	assert.Equal(t, "restaurant.activated", published[1].RoutingKey())
}

func TestRestaurantService_DeleteRequiresExactName(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRestaurantService(env.restaurants, env.snapshots, env.published, testOrderingURL)
	ctx := context.Background()
	r := env.seedRestaurant(t, "Bistro Nord")

	_, err := env.snapshots.Save(ctx, domain.NewOnboardingSnapshot(r.ID, r.CreatedAt), 0)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, r.ID, "bistro nord"), ErrDeleteConfirmationMismatch)
	assert.ErrorIs(t, svc.Delete(ctx, r.ID, ""), ErrDeleteConfirmationMismatch)

	require.NoError(t, svc.Delete(ctx, r.ID, "Bistro Nord"))

	_, err = svc.Get(ctx, r.ID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
	_, err = env.snapshots.Get(ctx, r.ID)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	published := env.published.Events()
	require.Len(t, published, 1)
	assert.Equal(t, events.ActionDeleted, published[0].Action)
	assert.Equal(t, "Bistro Nord", published[0].Metadata["name"])
}

func TestRestaurantService_ListSearches(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRestaurantService(env.restaurants, env.snapshots, env.published, testOrderingURL)

	env.seedRestaurant(t, "Bistro")
	env.seedRestaurant(t, "Trattoria")

	page, err := svc.List(context.Background(), domain.RestaurantFilter{Search: "tratt"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Trattoria", page.Items[0].Name)
}
