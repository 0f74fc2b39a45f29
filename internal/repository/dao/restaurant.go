package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

type Restaurant struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:255;not null;index"`
	Email         string `gorm:"size:255"`
	Phone         string `gorm:"size:64"`
	Address       string
	City          string `gorm:"size:128"`
	PostalCode    string `gorm:"size:32"`
	Country       string `gorm:"size:64"`
	ContactPerson string `gorm:"size:255"`
	IsActive      bool   `gorm:"not null;index"`
	OnboardedAt   *time.Time
	ReviewLink    string

	MessagingPhone  string `gorm:"size:64"`
	MessagingStatus string `gorm:"size:32"`

	POSProvider        string `gorm:"column:pos_provider;size:32"`
	POSUsername        string `gorm:"column:pos_username;size:255"`
	POSSecret          string `gorm:"column:pos_secret"`
	POSPort            int    `gorm:"column:pos_port"`
	POSBaseURL         string `gorm:"column:pos_base_url"`
	POSLastTestedAt    *time.Time `gorm:"column:pos_last_tested_at"`
	POSLastTestOK      bool       `gorm:"column:pos_last_test_ok"`
	POSLastTestMessage string     `gorm:"column:pos_last_test_message"`

	ServiceFeeBps     int    `gorm:"not null;default:0"`
	FixedFeeCents     int64  `gorm:"not null;default:0"`
	Currency          string `gorm:"size:3"`
	PaymentAccountID  string `gorm:"size:255"`
	PaymentLinkStatus string `gorm:"size:32"`

	TeamMembers []TeamMember `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Tables      []Table      `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type RestaurantListQuery struct {
	Search   string
	IsActive *bool
	Offset   int
	Limit    int
}

type RestaurantDAO struct {
	db *gorm.DB
}

func NewRestaurantDAO(db *gorm.DB) *RestaurantDAO {
	return &RestaurantDAO{
		db: db,
	}
}

func (d *RestaurantDAO) Insert(ctx context.Context, restaurant Restaurant) (Restaurant, error) {
	if err := d.db.WithContext(ctx).Create(&restaurant).Error; err != nil {
		return Restaurant{}, err
	}

	return restaurant, nil
}

func (d *RestaurantDAO) FindByID(ctx context.Context, id uint) (Restaurant, error) {
	var restaurant Restaurant

	result := d.db.WithContext(ctx).
		Preload("TeamMembers", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Tables", func(db *gorm.DB) *gorm.DB { return db.Order("number") }).
		First(&restaurant, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Restaurant{}, ErrRestaurantNotFound
		}

		return Restaurant{}, result.Error
	}

	return restaurant, nil
}

func (d *RestaurantDAO) filtered(ctx context.Context, q RestaurantListQuery) *gorm.DB {
	tx := d.db.WithContext(ctx).Model(&Restaurant{})
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}
	if q.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.IsActive)
	}

	return tx
}

func (d *RestaurantDAO) List(ctx context.Context, q RestaurantListQuery) ([]Restaurant, int64, error) {
	var total int64
	if err := d.filtered(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var restaurants []Restaurant
	result := d.filtered(ctx, q).
		Order("name").
		Order("id").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&restaurants)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return restaurants, total, nil
}

// UpdateColumns writes the given columns, zero values included.
func (d *RestaurantDAO) UpdateColumns(ctx context.Context, id uint, columns map[string]interface{}) error {
	result := d.db.WithContext(ctx).Model(&Restaurant{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := d.FindByID(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes the restaurant together with its staff, tables and
// onboarding history. Transactions are kept for bookkeeping.
func (d *RestaurantDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", id).Delete(&TeamMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&Table{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&OnboardingEvent{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Restaurant{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRestaurantNotFound
		}

		return nil
	})
}

// ApplyOnboarding writes the outcome of a finished onboarding atomically.
func (d *RestaurantDAO) ApplyOnboarding(ctx context.Context, id uint, members []TeamMember, tables []Table, columns map[string]interface{}) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&Restaurant{}).Where("id = ?", id).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return ErrRestaurantNotFound
		}

		if len(members) > 0 {
			if err := tx.Create(&members).Error; err != nil {
				if isUniqueViolation(err) {
					return ErrTeamMemberEmailExists
				}
				return err
			}
		}
		if len(tables) > 0 {
			if err := tx.Create(&tables).Error; err != nil {
				if isUniqueViolation(err) {
					return ErrTableNumberExists
				}
				return err
			}
		}

		return tx.Model(&Restaurant{}).Where("id = ?", id).Updates(columns).Error
	})
}
