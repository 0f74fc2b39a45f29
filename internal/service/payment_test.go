package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restodesk/backoffice/internal/domain"
)

func TestPaymentService_UpdateSettingsValidates(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPaymentService(env.restaurants, &fakeLinker{})
	ctx := context.Background()
	r := env.seedRestaurant(t, "Bistro")

	for _, fees := range []domain.FeeConfig{
		{ServiceFeeBps: -1, Currency: "EUR"},
		{ServiceFeeBps: 10001, Currency: "EUR"},
		{FixedFeeCents: -5, Currency: "EUR"},
		{Currency: "EURO"},
	} {
		_, err := svc.UpdateSettings(ctx, r.ID, fees)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}

	saved, err := svc.UpdateSettings(ctx, r.ID, domain.FeeConfig{ServiceFeeBps: 250, FixedFeeCents: 10, Currency: "usd"})
	require.NoError(t, err)
	assert.Equal(t, 250, saved.ServiceFeeBps)
	assert.Equal(t, "USD", saved.Currency)

	got, err := svc.GetSettings(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestPaymentService_AccountLinkAndSync(t *testing.T) {
	env := newTestEnv(t)
	linker := &fakeLinker{accountID: "acct_9"}
	svc := NewPaymentService(env.restaurants, linker)
	ctx := context.Background()
	r := env.seedRestaurant(t, "Bistro")

	_, err := svc.SyncAccountStatus(ctx, r.ID)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	link, err := svc.CreateAccountLink(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "acct_9", link.AccountID)

	fees, err := svc.GetSettings(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentLinkPending, fees.PaymentLinkStatus)

	linker.enabled = true
	fees, err = svc.SyncAccountStatus(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentLinkLinked, fees.PaymentLinkStatus)

	linker.err = errUpstream
	_, err = svc.CreateAccountLink(ctx, r.ID)
	assert.ErrorIs(t, err, ErrIntegrationFailed)
}
