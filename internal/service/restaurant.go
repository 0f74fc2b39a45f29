package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/events"
)

const defaultCurrency = "EUR"

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error)
	FindByID(ctx context.Context, id uint) (domain.Restaurant, error)
	List(ctx context.Context, filter domain.RestaurantFilter) (domain.RestaurantPage, error)
	UpdateProfile(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error)
	SetActive(ctx context.Context, id uint, active bool) (domain.Restaurant, error)
	Delete(ctx context.Context, id uint) error
}

type SnapshotDeleter interface {
	Delete(ctx context.Context, restaurantID uint) error
}

type RestaurantService struct {
	repo        RestaurantRepository
	snapshots   SnapshotDeleter
	publisher   events.Publisher
	orderingURL string
}

func NewRestaurantService(repo RestaurantRepository, snapshots SnapshotDeleter, publisher events.Publisher, publicOrderingURL string) *RestaurantService {
	return &RestaurantService{
		repo:        repo,
		snapshots:   snapshots,
		publisher:   publisher,
		orderingURL: publicOrderingURL,
	}
}

func (s *RestaurantService) List(ctx context.Context, filter domain.RestaurantFilter) (domain.RestaurantPage, error) {
	page, err := s.repo.List(ctx, filter)
	if err != nil {
		return domain.RestaurantPage{}, fmt.Errorf("s.repo.List -> %w", err)
	}

	return page, nil
}

func (s *RestaurantService) Get(ctx context.Context, id uint) (domain.Restaurant, error) {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return s.decorate(restaurant), nil
}

func (s *RestaurantService) Create(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error) {
	restaurant.Name = strings.TrimSpace(restaurant.Name)
	if restaurant.Fees.Currency == "" {
		restaurant.Fees.Currency = defaultCurrency
	}
	if restaurant.MessagingGroup.Status == "" {
		restaurant.MessagingGroup.Status = domain.MessagingStatusPending
	}

	created, err := s.repo.Create(ctx, restaurant)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return s.decorate(created), nil
}

func (s *RestaurantService) Update(ctx context.Context, id uint, update domain.RestaurantUpdate) (domain.Restaurant, error) {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	update.Apply(&restaurant)
	restaurant.Name = strings.TrimSpace(restaurant.Name)
	if restaurant.Name == "" {
		return domain.Restaurant{}, fmt.Errorf("%w: name cannot be blank", ErrInvalidArgument)
	}

	updated, err := s.repo.UpdateProfile(ctx, restaurant)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("s.repo.UpdateProfile -> %w", err)
	}

	return s.decorate(updated), nil
}

// ToggleActive flips is_active and nothing else.
func (s *RestaurantService) ToggleActive(ctx context.Context, id uint) (domain.Restaurant, error) {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	updated, err := s.repo.SetActive(ctx, id, !restaurant.IsActive)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("s.repo.SetActive -> %w", err)
	}

	action := events.ActionArchived
	if updated.IsActive {
		action = events.ActionActivated
	}
	s.publish(ctx, events.New(events.EntityRestaurant, action, id, nil))

	return s.decorate(updated), nil
}

// Delete removes the restaurant when confirmName is exactly its name.
func (s *RestaurantService) Delete(ctx context.Context, id uint, confirmName string) error {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if !restaurant.ConfirmsDeletion(confirmName) {
		return ErrDeleteConfirmationMismatch
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	if err = s.snapshots.Delete(ctx, id); err != nil {
		zap.L().Warn("failed to drop onboarding snapshot of deleted restaurant",
			zap.Uint("restaurant_id", id), zap.Error(err))
	}

	e := events.New(events.EntityRestaurant, events.ActionDeleted, id, nil)
	e.Metadata["name"] = restaurant.Name
	s.publish(ctx, e)

	return nil
}

func (s *RestaurantService) publish(ctx context.Context, e events.Event) {
	publishEvent(ctx, s.publisher, e)
}

// publishEvent never fails the caller, a lost event is only logged.
func publishEvent(ctx context.Context, publisher events.Publisher, e events.Event) {
	if err := publisher.Publish(ctx, e); err != nil {
		zap.L().Warn("failed to publish event",
			zap.String("routing_key", e.RoutingKey()), zap.Error(err))
	}
}

func (s *RestaurantService) decorate(r domain.Restaurant) domain.Restaurant {
	for i := range r.Tables {
		r.Tables[i].Link = domain.TableLink(s.orderingURL, r.ID, r.Tables[i].Token)
	}

	return r
}
