package request

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/restodesk/backoffice/internal/domain"
)

var errConfirmNameRequired = errors.New("confirm_name is required")

type CreateRestaurantRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
	ContactPerson string `json:"contact_person"`
	ReviewLink    string `json:"review_link"`
	Currency      string `json:"currency"`
}

func (req *CreateRestaurantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Phone, validation.Length(0, 64)),
		validation.Field(&req.PostalCode, validation.Length(0, 32)),
		validation.Field(&req.ReviewLink, is.URL),
		validation.Field(&req.Currency, currencyCode),
	)
}

func (req *CreateRestaurantRequest) Restaurant() domain.Restaurant {
	return domain.Restaurant{
		Name:          req.Name,
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       req.Address,
		City:          req.City,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		ContactPerson: req.ContactPerson,
		ReviewLink:    strings.TrimSpace(req.ReviewLink),
		IsActive:      true,
		Fees:          domain.FeeConfig{Currency: strings.ToUpper(req.Currency)},
	}
}

// UpdateRestaurantRequest is a partial update, absent fields are kept.
type UpdateRestaurantRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	PostalCode    *string `json:"postal_code"`
	Country       *string `json:"country"`
	ContactPerson *string `json:"contact_person"`
	ReviewLink    *string `json:"review_link"`
}

func (req *UpdateRestaurantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Phone, validation.Length(0, 64)),
		validation.Field(&req.ReviewLink, is.URL),
	)
}

func (req *UpdateRestaurantRequest) Update() domain.RestaurantUpdate {
	return domain.RestaurantUpdate{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		ContactPerson: req.ContactPerson,
		ReviewLink:    req.ReviewLink,
	}
}

type DeleteRestaurantRequest struct {
	ConfirmName string `json:"confirm_name" form:"confirm_name"`
}

func (req *DeleteRestaurantRequest) Validate() error {
	if req.ConfirmName == "" {
		return errConfirmNameRequired
	}

	return nil
}

type ListRestaurantsQuery struct {
	Search   string `form:"search"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func (q *ListRestaurantsQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Search, validation.Length(0, 255)),
		validation.Field(&q.Page, validation.Min(0)),
		validation.Field(&q.PageSize, validation.Min(0), validation.Max(domain.MaxPageSize)),
	)
}

func (q *ListRestaurantsQuery) Filter() domain.RestaurantFilter {
	return domain.RestaurantFilter{
		Search:   q.Search,
		IsActive: q.IsActive,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
}
