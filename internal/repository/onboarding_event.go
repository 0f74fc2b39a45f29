package repository

import (
	"context"
	"fmt"

	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/repository/dao"
)

type OnboardingEventDAO interface {
	InsertBatch(ctx context.Context, events []dao.OnboardingEvent) error
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]dao.OnboardingEvent, error)
}

type OnboardingEventRepository struct {
	dao OnboardingEventDAO
}

func NewOnboardingEventRepository(dao OnboardingEventDAO) *OnboardingEventRepository {
	return &OnboardingEventRepository{
		dao: dao,
	}
}

func (r *OnboardingEventRepository) Append(ctx context.Context, events ...domain.OnboardingEvent) error {
	rows := make([]dao.OnboardingEvent, 0, len(events))
	for _, e := range events {
		rows = append(rows, dao.OnboardingEvent{
			RestaurantID: e.RestaurantID,
			Step:         int(e.Step),
			Kind:         string(e.Kind),
			CreatedAt:    e.CreatedAt,
		})
	}

	if err := r.dao.InsertBatch(ctx, rows); err != nil {
		return fmt.Errorf("r.dao.InsertBatch -> %w", err)
	}

	return nil
}

func (r *OnboardingEventRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]domain.OnboardingEvent, error) {
	rows, err := r.dao.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByRestaurant -> %w", err)
	}

	events := make([]domain.OnboardingEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, domain.OnboardingEvent{
			ID:           row.ID,
			RestaurantID: row.RestaurantID,
			Step:         domain.OnboardingStep(row.Step),
			Kind:         domain.OnboardingEventKind(row.Kind),
			CreatedAt:    row.CreatedAt,
		})
	}

	return events, nil
}
