package domain

import (
	"time"
)

const (
	MessagingStatusPending   = "pending"
	MessagingStatusConnected = "connected"

	PaymentLinkPending = "pending"
	PaymentLinkLinked  = "linked"
)

type Restaurant struct {
	ID             uint           `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	City           string         `json:"city"`
	PostalCode     string         `json:"postal_code"`
	Country        string         `json:"country"`
	ContactPerson  string         `json:"contact_person"`
	IsActive       bool           `json:"is_active"`
	OnboardedAt    *time.Time     `json:"onboarded_at,omitempty"`
	ReviewLink     string         `json:"review_link"`
	MessagingGroup MessagingGroup `json:"messaging_group"`
	POS            POSConfig      `json:"pos"`
	Fees           FeeConfig      `json:"fees"`
	Staff          []TeamMember   `json:"staff"`
	Tables         []Table        `json:"tables"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type MessagingGroup struct {
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// FeeConfig is the billing setup of a restaurant. ServiceFeeBps is expressed
// in basis points of the order amount.
type FeeConfig struct {
	ServiceFeeBps     int    `json:"service_fee_bps"`
	FixedFeeCents     int64  `json:"fixed_fee_cents"`
	Currency          string `json:"currency"`
	PaymentAccountID  string `json:"payment_account_id"`
	PaymentLinkStatus string `json:"payment_link_status"`
}

// ServiceFee returns the fee charged on an order of amountCents.
func (f FeeConfig) ServiceFee(amountCents int64) int64 {
	return amountCents*int64(f.ServiceFeeBps)/10000 + f.FixedFeeCents
}

type RestaurantFilter struct {
	Search   string
	IsActive *bool
	Page     int
	PageSize int
}

type RestaurantPage struct {
	Items    []Restaurant `json:"items"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// ConfirmsDeletion reports whether confirmation is the exact restaurant name.
// The comparison is case-sensitive.
func (r Restaurant) ConfirmsDeletion(confirmation string) bool {
	return r.Name != "" && confirmation == r.Name
}

// OnboardingResult is everything a finished onboarding writes into the
// restaurant aggregate in one unit of work.
type OnboardingResult struct {
	Staff          []TeamMember
	Tables         []Table
	POS            POSConfig
	ReviewLink     string
	MessagingGroup MessagingGroup
	PaymentAccount string
	PaymentStatus  string
	OnboardedAt    time.Time
}

// PaymentAccountLink is a hosted onboarding URL for a connected payment
// account.
type PaymentAccountLink struct {
	AccountID string    `json:"account_id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RestaurantUpdate carries a partial profile edit. Nil fields are left as
// they are.
type RestaurantUpdate struct {
	Name          *string
	Email         *string
	Phone         *string
	Address       *string
	City          *string
	PostalCode    *string
	Country       *string
	ContactPerson *string
	ReviewLink    *string
}

func (u RestaurantUpdate) Apply(r *Restaurant) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&r.Name, u.Name)
	set(&r.Email, u.Email)
	set(&r.Phone, u.Phone)
	set(&r.Address, u.Address)
	set(&r.City, u.City)
	set(&r.PostalCode, u.PostalCode)
	set(&r.Country, u.Country)
	set(&r.ContactPerson, u.ContactPerson)
	set(&r.ReviewLink, u.ReviewLink)
}
