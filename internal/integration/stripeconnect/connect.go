// Package stripeconnect links restaurants to Stripe Connect express
// accounts.
package stripeconnect

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"

	"github.com/restodesk/backoffice/internal/config"
	"github.com/restodesk/backoffice/internal/domain"
)

var ErrNotConfigured = errors.New("stripe is not configured")

type Linker struct {
	api        *client.API
	refreshURL string
	returnURL  string
}

func New(conf *config.StripeConfig) *Linker {
	l := &Linker{}
	if conf == nil || conf.SecretKey == "" {
		return l
	}

	api := &client.API{}
	api.Init(conf.SecretKey, nil)
	l.api = api
	l.refreshURL = conf.RefreshURL
	l.returnURL = conf.ReturnURL

	return l
}

// CreateAccountLink reuses accountID when set, otherwise it opens a new
// express account for the restaurant first.
func (l *Linker) CreateAccountLink(ctx context.Context, restaurant domain.Restaurant, accountID string) (domain.PaymentAccountLink, error) {
	if l.api == nil {
		return domain.PaymentAccountLink{}, ErrNotConfigured
	}

	if accountID == "" {
		params := &stripe.AccountParams{
			Type:         stripe.String(string(stripe.AccountTypeExpress)),
			BusinessType: stripe.String(string(stripe.AccountBusinessTypeCompany)),
		}
		if restaurant.Email != "" {
			params.Email = stripe.String(restaurant.Email)
		}
		params.Context = ctx
		params.AddMetadata("restaurant_id", strconv.FormatUint(uint64(restaurant.ID), 10))

		account, err := l.api.Account.New(params)
		if err != nil {
			return domain.PaymentAccountLink{}, fmt.Errorf("l.api.Account.New -> %w", err)
		}
		accountID = account.ID
	}

	linkParams := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(l.refreshURL),
		ReturnURL:  stripe.String(l.returnURL),
		Type:       stripe.String("account_onboarding"),
	}
	linkParams.Context = ctx

	link, err := l.api.AccountLinks.New(linkParams)
	if err != nil {
		return domain.PaymentAccountLink{}, fmt.Errorf("l.api.AccountLinks.New -> %w", err)
	}

	return domain.PaymentAccountLink{
		AccountID: accountID,
		URL:       link.URL,
		ExpiresAt: time.Unix(link.ExpiresAt, 0).UTC(),
	}, nil
}

// ChargesEnabled reports whether the connected account finished onboarding
// and may accept payments.
func (l *Linker) ChargesEnabled(ctx context.Context, accountID string) (bool, error) {
	if l.api == nil {
		return false, ErrNotConfigured
	}

	params := &stripe.AccountParams{}
	params.Context = ctx

	account, err := l.api.Account.GetByID(accountID, params)
	if err != nil {
		return false, fmt.Errorf("l.api.Account.GetByID -> %w", err)
	}

	return account.ChargesEnabled, nil
}
