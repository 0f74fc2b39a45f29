package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/restodesk/backoffice/internal/domain"
)

const maxServiceFeeBps = 10000

type PaymentRestaurantRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Restaurant, error)
	UpdateFees(ctx context.Context, id uint, fees domain.FeeConfig) (domain.Restaurant, error)
	UpdatePaymentAccount(ctx context.Context, id uint, accountID, status string) (domain.Restaurant, error)
}

type PaymentAccountLinker interface {
	CreateAccountLink(ctx context.Context, restaurant domain.Restaurant, accountID string) (domain.PaymentAccountLink, error)
	ChargesEnabled(ctx context.Context, accountID string) (bool, error)
}

type PaymentService struct {
	repo   PaymentRestaurantRepository
	linker PaymentAccountLinker
}

func NewPaymentService(repo PaymentRestaurantRepository, linker PaymentAccountLinker) *PaymentService {
	return &PaymentService{
		repo:   repo,
		linker: linker,
	}
}

func (s *PaymentService) GetSettings(ctx context.Context, restaurantID uint) (domain.FeeConfig, error) {
	restaurant, err := s.repo.FindByID(ctx, restaurantID)
	if err != nil {
		return domain.FeeConfig{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return restaurant.Fees, nil
}

// UpdateSettings replaces the fee configuration. The linked account is not
// editable here.
func (s *PaymentService) UpdateSettings(ctx context.Context, restaurantID uint, fees domain.FeeConfig) (domain.FeeConfig, error) {
	if fees.ServiceFeeBps < 0 || fees.ServiceFeeBps > maxServiceFeeBps {
		return domain.FeeConfig{}, fmt.Errorf("%w: service fee must be between 0 and %d basis points", ErrInvalidArgument, maxServiceFeeBps)
	}
	if fees.FixedFeeCents < 0 {
		return domain.FeeConfig{}, fmt.Errorf("%w: fixed fee cannot be negative", ErrInvalidArgument)
	}
	fees.Currency = strings.ToUpper(strings.TrimSpace(fees.Currency))
	if len(fees.Currency) != 3 {
		return domain.FeeConfig{}, fmt.Errorf("%w: currency must be a 3 letter ISO code", ErrInvalidArgument)
	}

	updated, err := s.repo.UpdateFees(ctx, restaurantID, fees)
	if err != nil {
		return domain.FeeConfig{}, fmt.Errorf("s.repo.UpdateFees -> %w", err)
	}

	return updated.Fees, nil
}

// CreateAccountLink returns a hosted onboarding link for the restaurant's
// payment account, creating the account on first use.
func (s *PaymentService) CreateAccountLink(ctx context.Context, restaurantID uint) (domain.PaymentAccountLink, error) {
	restaurant, err := s.repo.FindByID(ctx, restaurantID)
	if err != nil {
		return domain.PaymentAccountLink{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	link, err := s.linker.CreateAccountLink(ctx, restaurant, restaurant.Fees.PaymentAccountID)
	if err != nil {
		return domain.PaymentAccountLink{}, fmt.Errorf("%w: %v", ErrIntegrationFailed, err)
	}

	status := restaurant.Fees.PaymentLinkStatus
	if link.AccountID != restaurant.Fees.PaymentAccountID || status == "" {
		status = domain.PaymentLinkPending
	}
	if _, err = s.repo.UpdatePaymentAccount(ctx, restaurantID, link.AccountID, status); err != nil {
		return domain.PaymentAccountLink{}, fmt.Errorf("s.repo.UpdatePaymentAccount -> %w", err)
	}

	return link, nil
}

// SyncAccountStatus asks the payment provider whether the account can take
// charges and stores the outcome.
func (s *PaymentService) SyncAccountStatus(ctx context.Context, restaurantID uint) (domain.FeeConfig, error) {
	restaurant, err := s.repo.FindByID(ctx, restaurantID)
	if err != nil {
		return domain.FeeConfig{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if restaurant.Fees.PaymentAccountID == "" {
		return domain.FeeConfig{}, fmt.Errorf("%w: no payment account linked yet", ErrInvalidArgument)
	}

	enabled, err := s.linker.ChargesEnabled(ctx, restaurant.Fees.PaymentAccountID)
	if err != nil {
		return domain.FeeConfig{}, fmt.Errorf("%w: %v", ErrIntegrationFailed, err)
	}

	status := domain.PaymentLinkPending
	if enabled {
		status = domain.PaymentLinkLinked
	}

	updated, err := s.repo.UpdatePaymentAccount(ctx, restaurantID, restaurant.Fees.PaymentAccountID, status)
	if err != nil {
		return domain.FeeConfig{}, fmt.Errorf("s.repo.UpdatePaymentAccount -> %w", err)
	}

	return updated.Fees, nil
}
