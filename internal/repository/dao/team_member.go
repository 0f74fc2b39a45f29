package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrTeamMemberNotFound    = errors.New("team member not found")
	ErrTeamMemberEmailExists = errors.New("a team member with this email already exists for the restaurant")
)

type TeamMember struct {
	ID                uint   `gorm:"primaryKey"`
	RestaurantID      uint   `gorm:"not null;uniqueIndex:idx_team_members_restaurant_email"`
	Name              string `gorm:"size:255;not null"`
	Email             string `gorm:"size:255;not null;uniqueIndex:idx_team_members_restaurant_email"`
	Phone             string `gorm:"size:64"`
	IsRestaurantAdmin bool   `gorm:"not null"`
	IsRestaurantStaff bool   `gorm:"not null"`
	IsActive          bool   `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type TeamMemberDAO struct {
	db *gorm.DB
}

func NewTeamMemberDAO(db *gorm.DB) *TeamMemberDAO {
	return &TeamMemberDAO{
		db: db,
	}
}

func (d *TeamMemberDAO) Insert(ctx context.Context, member TeamMember) (TeamMember, error) {
	if err := d.db.WithContext(ctx).Create(&member).Error; err != nil {
		if isUniqueViolation(err) {
			return TeamMember{}, ErrTeamMemberEmailExists
		}

		return TeamMember{}, err
	}

	return member, nil
}

func (d *TeamMemberDAO) FindByID(ctx context.Context, restaurantID, id uint) (TeamMember, error) {
	var member TeamMember

	result := d.db.WithContext(ctx).First(&member, "id = ? AND restaurant_id = ?", id, restaurantID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TeamMember{}, ErrTeamMemberNotFound
		}

		return TeamMember{}, result.Error
	}

	return member, nil
}

func (d *TeamMemberDAO) ListByRestaurant(ctx context.Context, restaurantID uint) ([]TeamMember, error) {
	var members []TeamMember

	result := d.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Order("id").Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}

func (d *TeamMemberDAO) UpdateColumns(ctx context.Context, restaurantID, id uint, columns map[string]interface{}) error {
	result := d.db.WithContext(ctx).
		Model(&TeamMember{}).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Updates(columns)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ErrTeamMemberEmailExists
		}

		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := d.FindByID(ctx, restaurantID, id); err != nil {
			return err
		}
	}

	return nil
}

func (d *TeamMemberDAO) Delete(ctx context.Context, restaurantID, id uint) error {
	result := d.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Delete(&TeamMember{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamMemberNotFound
	}

	return nil
}
