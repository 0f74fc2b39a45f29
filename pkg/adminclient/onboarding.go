package adminclient

import (
	"context"
	"net/http"
)

// Onboarding step names accepted by SaveStep endpoints.
const (
	StepPersonnel = "personnel"
	StepPOS       = "pos"
	StepTables    = "tables"
	StepReviews   = "reviews"
	StepMessaging = "messaging"
)

type versioned struct {
	Version int64 `json:"version"`
}

func onboardingPath(restaurantID uint, parts ...string) string {
	return restaurantPath(restaurantID, append([]string{"onboarding"}, parts...)...)
}

// GetOnboarding returns the snapshot, starting a new one at the welcome
// step when none exists.
func (c *Client) GetOnboarding(ctx context.Context, restaurantID uint) (OnboardingSnapshot, error) {
	var s OnboardingSnapshot
	err := c.do(ctx, http.MethodGet, onboardingPath(restaurantID), nil, nil, &s)

	return s, err
}

func (c *Client) ResetOnboarding(ctx context.Context, restaurantID uint) error {
	return c.do(ctx, http.MethodDelete, onboardingPath(restaurantID), nil, nil, nil)
}

func (c *Client) saveStep(ctx context.Context, restaurantID uint, step string, body map[string]interface{}) (OnboardingSnapshot, error) {
	var s OnboardingSnapshot
	err := c.do(ctx, http.MethodPut, onboardingPath(restaurantID, "steps", step), nil, body, &s)

	return s, err
}

func (c *Client) SavePersonnel(ctx context.Context, restaurantID uint, version int64, personnel []PersonnelEntry) (OnboardingSnapshot, error) {
	if personnel == nil {
		personnel = []PersonnelEntry{}
	}

	return c.saveStep(ctx, restaurantID, StepPersonnel, map[string]interface{}{
		"version":   version,
		"personnel": personnel,
	})
}

// SavePOSStep keeps the stored secret when in.Password is empty.
func (c *Client) SavePOSStep(ctx context.Context, restaurantID uint, version int64, in POSInput) (OnboardingSnapshot, error) {
	return c.saveStep(ctx, restaurantID, StepPOS, map[string]interface{}{
		"version": version,
		"pos":     in,
	})
}

func (c *Client) SaveTablesStep(ctx context.Context, restaurantID uint, version int64, count int, sections []string) (OnboardingSnapshot, error) {
	return c.saveStep(ctx, restaurantID, StepTables, map[string]interface{}{
		"version": version,
		"tables":  map[string]interface{}{"table_count": count, "sections": sections},
	})
}

func (c *Client) SaveReviewsStep(ctx context.Context, restaurantID uint, version int64, reviewLink string) (OnboardingSnapshot, error) {
	return c.saveStep(ctx, restaurantID, StepReviews, map[string]interface{}{
		"version": version,
		"reviews": map[string]string{"review_link": reviewLink},
	})
}

func (c *Client) SaveMessagingStep(ctx context.Context, restaurantID uint, version int64, phone string) (OnboardingSnapshot, error) {
	return c.saveStep(ctx, restaurantID, StepMessaging, map[string]interface{}{
		"version":   version,
		"messaging": map[string]string{"phone": phone},
	})
}

func (c *Client) transition(ctx context.Context, restaurantID uint, version int64, action ...string) (OnboardingSnapshot, error) {
	var s OnboardingSnapshot
	err := c.do(ctx, http.MethodPost, onboardingPath(restaurantID, action...), nil, versioned{version}, &s)

	return s, err
}

// NextStep validates the current step and advances. A failed check comes
// back as an APIError with status 422 and Step set.
func (c *Client) NextStep(ctx context.Context, restaurantID uint, version int64) (OnboardingSnapshot, error) {
	return c.transition(ctx, restaurantID, version, "next")
}

func (c *Client) PreviousStep(ctx context.Context, restaurantID uint, version int64) (OnboardingSnapshot, error) {
	return c.transition(ctx, restaurantID, version, "previous")
}

func (c *Client) CreatePaymentLink(ctx context.Context, restaurantID uint, version int64) (PaymentLinkResponse, error) {
	var res PaymentLinkResponse
	err := c.do(ctx, http.MethodPost, onboardingPath(restaurantID, "payment-link"), nil, versioned{version}, &res)

	return res, err
}

func (c *Client) ConfirmPaymentLink(ctx context.Context, restaurantID uint, version int64) (OnboardingSnapshot, error) {
	return c.transition(ctx, restaurantID, version, "payment-link", "confirm")
}

func (c *Client) ConnectMessaging(ctx context.Context, restaurantID uint, version int64) (OnboardingSnapshot, error) {
	return c.transition(ctx, restaurantID, version, "messaging", "connect")
}

// FinishOnboarding applies the collected data and returns the restaurant.
func (c *Client) FinishOnboarding(ctx context.Context, restaurantID uint, version int64) (Restaurant, error) {
	var r Restaurant
	err := c.do(ctx, http.MethodPost, onboardingPath(restaurantID, "finish"), nil, versioned{version}, &r)

	return r, err
}

func (c *Client) ListOnboardingEvents(ctx context.Context, restaurantID uint) ([]OnboardingEvent, error) {
	var list []OnboardingEvent
	err := c.do(ctx, http.MethodGet, onboardingPath(restaurantID, "events"), nil, nil, &list)

	return list, err
}
