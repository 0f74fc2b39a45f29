package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/repository/dao"
)

var (
	ErrRestaurantNotFound    = dao.ErrRestaurantNotFound
	ErrTeamMemberEmailExists = dao.ErrTeamMemberEmailExists
	ErrTableNumberExists     = dao.ErrTableNumberExists
)

type RestaurantDAO interface {
	Insert(ctx context.Context, restaurant dao.Restaurant) (dao.Restaurant, error)
	FindByID(ctx context.Context, id uint) (dao.Restaurant, error)
	List(ctx context.Context, q dao.RestaurantListQuery) ([]dao.Restaurant, int64, error)
	UpdateColumns(ctx context.Context, id uint, columns map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	ApplyOnboarding(ctx context.Context, id uint, members []dao.TeamMember, tables []dao.Table, columns map[string]interface{}) error
}

type RestaurantRepository struct {
	dao RestaurantDAO
}

func NewRestaurantRepository(dao RestaurantDAO) *RestaurantRepository {
	return &RestaurantRepository{
		dao: dao,
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error) {
	created, err := r.dao.Insert(ctx, restaurantDomainToDao(restaurant))
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.FindByID(ctx, created.ID)
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id uint) (domain.Restaurant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return restaurantDaoToDomain(found), nil
}

func (r *RestaurantRepository) List(ctx context.Context, filter domain.RestaurantFilter) (domain.RestaurantPage, error) {
	page, size := domain.NormalizePage(filter.Page, filter.PageSize)

	rows, total, err := r.dao.List(ctx, dao.RestaurantListQuery{
		Search:   filter.Search,
		IsActive: filter.IsActive,
		Offset:   domain.PageOffset(page, size),
		Limit:    size,
	})
	if err != nil {
		return domain.RestaurantPage{}, fmt.Errorf("r.dao.List -> %w", err)
	}

	items := make([]domain.Restaurant, 0, len(rows))
	for _, row := range rows {
		items = append(items, restaurantDaoToDomain(row))
	}

	return domain.RestaurantPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: size,
	}, nil
}

// UpdateProfile writes the contact and address fields of restaurant.
func (r *RestaurantRepository) UpdateProfile(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error) {
	return r.updateColumns(ctx, restaurant.ID, map[string]interface{}{
		"name":           restaurant.Name,
		"email":          restaurant.Email,
		"phone":          restaurant.Phone,
		"address":        restaurant.Address,
		"city":           restaurant.City,
		"postal_code":    restaurant.PostalCode,
		"country":        restaurant.Country,
		"contact_person": restaurant.ContactPerson,
		"review_link":    restaurant.ReviewLink,
	})
}

func (r *RestaurantRepository) SetActive(ctx context.Context, id uint, active bool) (domain.Restaurant, error) {
	return r.updateColumns(ctx, id, map[string]interface{}{"is_active": active})
}

// UpdatePOS stores a new POS configuration. The previous test result no
// longer applies and is cleared.
func (r *RestaurantRepository) UpdatePOS(ctx context.Context, id uint, pos domain.POSConfig) (domain.Restaurant, error) {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"pos_provider":          string(pos.Provider),
		"pos_username":          pos.Username,
		"pos_secret":            pos.Secret,
		"pos_port":              pos.Port,
		"pos_base_url":          pos.BaseURL,
		"pos_last_tested_at":    nil,
		"pos_last_test_ok":      false,
		"pos_last_test_message": "",
	})
}

func (r *RestaurantRepository) RecordPOSTest(ctx context.Context, id uint, result domain.POSTestResult) (domain.Restaurant, error) {
	testedAt := result.TestedAt

	return r.updateColumns(ctx, id, map[string]interface{}{
		"pos_last_tested_at":    &testedAt,
		"pos_last_test_ok":      result.OK,
		"pos_last_test_message": result.Message,
	})
}

func (r *RestaurantRepository) UpdateFees(ctx context.Context, id uint, fees domain.FeeConfig) (domain.Restaurant, error) {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"service_fee_bps": fees.ServiceFeeBps,
		"fixed_fee_cents": fees.FixedFeeCents,
		"currency":        fees.Currency,
	})
}

func (r *RestaurantRepository) UpdatePaymentAccount(ctx context.Context, id uint, accountID, status string) (domain.Restaurant, error) {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"payment_account_id":  accountID,
		"payment_link_status": status,
	})
}

func (r *RestaurantRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

// ApplyOnboarding writes staff, tables, POS, review link, messaging group
// and the payment link into the restaurant in a single transaction.
func (r *RestaurantRepository) ApplyOnboarding(ctx context.Context, id uint, result domain.OnboardingResult) (domain.Restaurant, error) {
	members := make([]dao.TeamMember, 0, len(result.Staff))
	for _, m := range result.Staff {
		m.RestaurantID = id
		members = append(members, teamMemberDomainToDao(m))
	}

	tables := make([]dao.Table, 0, len(result.Tables))
	for _, t := range result.Tables {
		t.RestaurantID = id
		tables = append(tables, tableDomainToDao(t))
	}

	onboardedAt := result.OnboardedAt
	columns := map[string]interface{}{
		"pos_provider":          string(result.POS.Provider),
		"pos_username":          result.POS.Username,
		"pos_secret":            result.POS.Secret,
		"pos_port":              result.POS.Port,
		"pos_base_url":          result.POS.BaseURL,
		"pos_last_tested_at":    nil,
		"pos_last_test_ok":      false,
		"pos_last_test_message": "",
		"review_link":           result.ReviewLink,
		"messaging_phone":       result.MessagingGroup.Phone,
		"messaging_status":      result.MessagingGroup.Status,
		"payment_account_id":    result.PaymentAccount,
		"payment_link_status":   result.PaymentStatus,
		"onboarded_at":          &onboardedAt,
	}

	if err := r.dao.ApplyOnboarding(ctx, id, members, tables, columns); err != nil {
		return domain.Restaurant{}, fmt.Errorf("r.dao.ApplyOnboarding -> %w", err)
	}

	return r.FindByID(ctx, id)
}

func (r *RestaurantRepository) updateColumns(ctx context.Context, id uint, columns map[string]interface{}) (domain.Restaurant, error) {
	if err := r.dao.UpdateColumns(ctx, id, columns); err != nil {
		return domain.Restaurant{}, fmt.Errorf("r.dao.UpdateColumns -> %w", err)
	}

	return r.FindByID(ctx, id)
}

func restaurantDomainToDao(r domain.Restaurant) dao.Restaurant {
	return dao.Restaurant{
		ID:                 r.ID,
		Name:               r.Name,
		Email:              r.Email,
		Phone:              r.Phone,
		Address:            r.Address,
		City:               r.City,
		PostalCode:         r.PostalCode,
		Country:            r.Country,
		ContactPerson:      r.ContactPerson,
		IsActive:           r.IsActive,
		OnboardedAt:        r.OnboardedAt,
		ReviewLink:         r.ReviewLink,
		MessagingPhone:     r.MessagingGroup.Phone,
		MessagingStatus:    r.MessagingGroup.Status,
		POSProvider:        string(r.POS.Provider),
		POSUsername:        r.POS.Username,
		POSSecret:          r.POS.Secret,
		POSPort:            r.POS.Port,
		POSBaseURL:         r.POS.BaseURL,
		POSLastTestedAt:    r.POS.LastTestedAt,
		POSLastTestOK:      r.POS.LastTestOK,
		POSLastTestMessage: r.POS.LastTestMessage,
		ServiceFeeBps:      r.Fees.ServiceFeeBps,
		FixedFeeCents:      r.Fees.FixedFeeCents,
		Currency:           r.Fees.Currency,
		PaymentAccountID:   r.Fees.PaymentAccountID,
		PaymentLinkStatus:  r.Fees.PaymentLinkStatus,
	}
}

func restaurantDaoToDomain(r dao.Restaurant) domain.Restaurant {
	staff := make([]domain.TeamMember, 0, len(r.TeamMembers))
	for _, m := range r.TeamMembers {
		staff = append(staff, teamMemberDaoToDomain(m))
	}

	tables := make([]domain.Table, 0, len(r.Tables))
	for _, t := range r.Tables {
		tables = append(tables, tableDaoToDomain(t))
	}

	return domain.Restaurant{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		City:          r.City,
		PostalCode:    r.PostalCode,
		Country:       r.Country,
		ContactPerson: r.ContactPerson,
		IsActive:      r.IsActive,
		OnboardedAt:   utcPtr(r.OnboardedAt),
		ReviewLink:    r.ReviewLink,
		MessagingGroup: domain.MessagingGroup{
			Phone:  r.MessagingPhone,
			Status: r.MessagingStatus,
		},
		POS: domain.POSConfig{
			Provider:        domain.POSProvider(r.POSProvider),
			Username:        r.POSUsername,
			Secret:          r.POSSecret,
			HasSecret:       r.POSSecret != "",
			Port:            r.POSPort,
			BaseURL:         r.POSBaseURL,
			LastTestedAt:    utcPtr(r.POSLastTestedAt),
			LastTestOK:      r.POSLastTestOK,
			LastTestMessage: r.POSLastTestMessage,
		},
		Fees: domain.FeeConfig{
			ServiceFeeBps:     r.ServiceFeeBps,
			FixedFeeCents:     r.FixedFeeCents,
			Currency:          r.Currency,
			PaymentAccountID:  r.PaymentAccountID,
			PaymentLinkStatus: r.PaymentLinkStatus,
		},
		Staff:     staff,
		Tables:    tables,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()

	return &u
}
