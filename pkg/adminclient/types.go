package adminclient

import (
	"time"

	"github.com/restodesk/backoffice/internal/api/handler/v1/response"
	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/service"
)

// Wire types shared with the server.
type (
	User                = domain.User
	Restaurant          = domain.Restaurant
	RestaurantPage      = domain.RestaurantPage
	TeamMember          = domain.TeamMember
	Table               = domain.Table
	POSConfig           = domain.POSConfig
	POSTestResult       = domain.POSTestResult
	POSProviderInfo     = service.POSProviderInfo
	FeeConfig           = domain.FeeConfig
	PaymentAccountLink  = domain.PaymentAccountLink
	TransactionSummary  = domain.TransactionSummary
	TransactionList     = response.TransactionList
	PersonnelEntry      = domain.PersonnelEntry
	OnboardingSnapshot  = response.OnboardingSnapshot
	OnboardingEvent     = domain.OnboardingEvent
	PaymentLinkResponse = response.PaymentLinkResponse
	LiveMessage         = response.LiveMessage
	LoginResponse       = response.LoginResponse
)

type RestaurantInput struct {
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Country       string `json:"country,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	ReviewLink    string `json:"review_link,omitempty"`
	Currency      string `json:"currency,omitempty"`
}

// RestaurantUpdate is a partial update. Nil fields are left untouched.
type RestaurantUpdate struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	Country       *string `json:"country,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	ReviewLink    *string `json:"review_link,omitempty"`
}

type RestaurantQuery struct {
	Search   string
	IsActive *bool
	Page     int
	PageSize int
}

type TeamMemberInput struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	IsRestaurantAdmin bool   `json:"is_restaurant_admin"`
	IsRestaurantStaff bool   `json:"is_restaurant_staff"`
}

type TableInput struct {
	Number  int    `json:"number,omitempty"`
	Section string `json:"section,omitempty"`
}

type POSInput struct {
	Provider string `json:"provider"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Port     int    `json:"port,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}

type FeeInput struct {
	ServiceFeeBps int    `json:"service_fee_bps"`
	FixedFeeCents int64  `json:"fixed_fee_cents"`
	Currency      string `json:"currency"`
}

type TransactionQuery struct {
	RestaurantID uint
	Status       string
	From         time.Time
	To           time.Time
	Page         int
	PageSize     int
}

type SignupInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name"`
	Role            string `json:"role,omitempty"`
}
