package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type OnboardingEvent struct {
	ID           uint   `gorm:"primaryKey"`
	RestaurantID uint   `gorm:"not null;index"`
	Step         int    `gorm:"not null"`
	Kind         string `gorm:"size:32;not null"`
	CreatedAt    time.Time
}

type OnboardingEventDAO struct {
	db *gorm.DB
}

func NewOnboardingEventDAO(db *gorm.DB) *OnboardingEventDAO {
	return &OnboardingEventDAO{
		db: db,
	}
}

func (d *OnboardingEventDAO) InsertBatch(ctx context.Context, events []OnboardingEvent) error {
	if len(events) == 0 {
		return nil
	}

	return d.db.WithContext(ctx).Create(&events).Error
}

func (d *OnboardingEventDAO) ListByRestaurant(ctx context.Context, restaurantID uint) ([]OnboardingEvent, error) {
	var events []OnboardingEvent

	result := d.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at").
		Order("id").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}
