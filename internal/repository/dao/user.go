package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

// User is a back-office operator. Email is stored lower-cased.
type User struct {
	ID          uint       `gorm:"primaryKey"`
	Email       string     `gorm:"uniqueIndex;size:255;not null"`
	Password    string     `gorm:"not null"`
	Role        string     `gorm:"size:32;not null;index"`
	Name        string     `gorm:"size:255;not null"`
	LastLoginAt *time.Time

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	if err := d.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrUserEmailExists
		}

		return User{}, err
	}

	return user, nil
}

func (d *UserDAO) first(ctx context.Context, conds ...interface{}) (User, error) {
	var user User
	if err := d.db.WithContext(ctx).First(&user, conds...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, err
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	return d.first(ctx, id)
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	return d.first(ctx, "email = ?", email)
}

// List returns operators, super admins first.
func (d *UserDAO) List(ctx context.Context) ([]User, error) {
	var users []User
	err := d.db.WithContext(ctx).
		Order("CASE WHEN role = 'super_admin' THEN 0 ELSE 1 END").
		Order("name").
		Order("id").
		Find(&users).Error

	return users, err
}

func (d *UserDAO) TouchLogin(ctx context.Context, id uint, at time.Time) error {
	result := d.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Update("last_login_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
