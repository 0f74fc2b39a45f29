package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedRestaurant(t *testing.T, gormDB *gorm.DB, name string) Restaurant {
	t.Helper()

	r, err := NewRestaurantDAO(gormDB).Insert(context.Background(), Restaurant{
		Name:     name,
		City:     "Utrecht",
		Email:    "info@" + name + ".nl",
		IsActive: true,
		Currency: "EUR",
	})
	require.NoError(t, err)

	return r
}

func TestRestaurantDAO_ListFiltersAndPaginates(t *testing.T) {
	gormDB := newSQLiteDB(t)
	d := NewRestaurantDAO(gormDB)
	ctx := context.Background()

	seedRestaurant(t, gormDB, "alpha")
	beta := seedRestaurant(t, gormDB, "beta")
	seedRestaurant(t, gormDB, "gamma")
	require.NoError(t, d.UpdateColumns(ctx, beta.ID, map[string]interface{}{"is_active": false}))

	all, total, err := d.List(ctx, RestaurantListQuery{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].Name)

	active := true
	onlyActive, total, err := d.List(ctx, RestaurantListQuery{IsActive: &active, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, onlyActive, 2)

	searched, total, err := d.List(ctx, RestaurantListQuery{Search: "GAM", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "gamma", searched[0].Name)
}

func TestRestaurantDAO_UpdateColumnsMissing(t *testing.T) {
	d := NewRestaurantDAO(newSQLiteDB(t))

	err := d.UpdateColumns(context.Background(), 42, map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestRestaurantDAO_DeleteCascadesButKeepsTransactions(t *testing.T) {
	gormDB := newSQLiteDB(t)
	ctx := context.Background()
	r := seedRestaurant(t, gormDB, "cascade")

	_, err := NewTeamMemberDAO(gormDB).Insert(ctx, TeamMember{RestaurantID: r.ID, Name: "Ann", Email: "ann@x.nl", IsRestaurantAdmin: true, IsActive: true})
	require.NoError(t, err)
	_, err = NewTableDAO(gormDB).Insert(ctx, Table{RestaurantID: r.ID, Number: 1, Token: "t1", IsActive: true})
	require.NoError(t, err)
	require.NoError(t, NewOnboardingEventDAO(gormDB).InsertBatch(ctx, []OnboardingEvent{{RestaurantID: r.ID, Step: 1, Kind: "step_completed"}}))
	_, err = NewTransactionDAO(gormDB).Insert(ctx, Transaction{RestaurantID: r.ID, AmountCents: 100, Currency: "EUR", Status: "succeeded"})
	require.NoError(t, err)

	d := NewRestaurantDAO(gormDB)
	require.NoError(t, d.Delete(ctx, r.ID))

	_, err = d.FindByID(ctx, r.ID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	members, err := NewTeamMemberDAO(gormDB).ListByRestaurant(ctx, r.ID)
	require.NoError(t, err)
	assert.Empty(t, members)

	events, err := NewOnboardingEventDAO(gormDB).ListByRestaurant(ctx, r.ID)
	require.NoError(t, err)
	assert.Empty(t, events)

	txs, total, err := NewTransactionDAO(gormDB).List(ctx, TransactionListQuery{RestaurantID: &r.ID, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, txs, 1)

	assert.ErrorIs(t, d.Delete(ctx, r.ID), ErrRestaurantNotFound)
}

func TestRestaurantDAO_ApplyOnboarding(t *testing.T) {
	gormDB := newSQLiteDB(t)
	ctx := context.Background()
	r := seedRestaurant(t, gormDB, "wizard")
	d := NewRestaurantDAO(gormDB)
	now := time.Now().UTC()

	err := d.ApplyOnboarding(ctx, r.ID,
		[]TeamMember{{RestaurantID: r.ID, Name: "Ann", Email: "ann@x.nl", IsRestaurantAdmin: true, IsActive: true}},
		[]Table{
			{RestaurantID: r.ID, Number: 1, Section: "Bar", Token: "a", IsActive: true},
			{RestaurantID: r.ID, Number: 2, Section: "Bar", Token: "b", IsActive: true},
		},
		map[string]interface{}{"review_link": "https://g.page/r/x", "onboarded_at": now},
	)
	require.NoError(t, err)

	found, err := d.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Len(t, found.TeamMembers, 1)
	assert.Len(t, found.Tables, 2)
	assert.Equal(t, "https://g.page/r/x", found.ReviewLink)
	assert.NotNil(t, found.OnboardedAt)
}

func TestRestaurantDAO_ApplyOnboardingRollsBack(t *testing.T) {
	gormDB := newSQLiteDB(t)
	ctx := context.Background()
	r := seedRestaurant(t, gormDB, "rollback")
	d := NewRestaurantDAO(gormDB)

	err := d.ApplyOnboarding(ctx, r.ID,
		[]TeamMember{
			{RestaurantID: r.ID, Name: "Ann", Email: "dup@x.nl", IsRestaurantAdmin: true},
			{RestaurantID: r.ID, Name: "Bob", Email: "dup@x.nl", IsRestaurantStaff: true},
		},
		nil,
		map[string]interface{}{"review_link": "https://g.page/r/x"},
	)
	assert.ErrorIs(t, err, ErrTeamMemberEmailExists)

	found, err := d.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Empty(t, found.TeamMembers)
	assert.Empty(t, found.ReviewLink)
}

func TestRestaurantDAO_Postgres(t *testing.T) {
	gormDB := newPostgresDB(t)
	ctx := context.Background()
	r := seedRestaurant(t, gormDB, "postgres")

	members := NewTeamMemberDAO(gormDB)
	_, err := members.Insert(ctx, TeamMember{RestaurantID: r.ID, Name: "Ann", Email: "ann@x.nl", IsRestaurantAdmin: true})
	require.NoError(t, err)
	_, err = members.Insert(ctx, TeamMember{RestaurantID: r.ID, Name: "Ann 2", Email: "ann@x.nl", IsRestaurantStaff: true})
	assert.ErrorIs(t, err, ErrTeamMemberEmailExists)

	require.NoError(t, NewRestaurantDAO(gormDB).Delete(ctx, r.ID))
}
