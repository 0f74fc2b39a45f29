package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrTableNotFound     = errors.New("table not found")
	ErrTableNumberExists = errors.New("a table with this number already exists for the restaurant")
)

type Table struct {
	ID           uint   `gorm:"primaryKey"`
	RestaurantID uint   `gorm:"not null;uniqueIndex:idx_tables_restaurant_number"`
	Number       int    `gorm:"not null;uniqueIndex:idx_tables_restaurant_number"`
	Section      string `gorm:"size:128"`
	IsActive     bool   `gorm:"not null"`
	Token        string `gorm:"size:64;not null;uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Table) TableName() string {
	return "restaurant_tables"
}

type TableDAO struct {
	db *gorm.DB
}

func NewTableDAO(db *gorm.DB) *TableDAO {
	return &TableDAO{
		db: db,
	}
}

func (d *TableDAO) Insert(ctx context.Context, table Table) (Table, error) {
	if err := d.db.WithContext(ctx).Create(&table).Error; err != nil {
		if isUniqueViolation(err) {
			return Table{}, ErrTableNumberExists
		}

		return Table{}, err
	}

	return table, nil
}

func (d *TableDAO) InsertBatch(ctx context.Context, tables []Table) ([]Table, error) {
	if len(tables) == 0 {
		return tables, nil
	}
	if err := d.db.WithContext(ctx).Create(&tables).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrTableNumberExists
		}

		return nil, err
	}

	return tables, nil
}

func (d *TableDAO) FindByID(ctx context.Context, restaurantID, id uint) (Table, error) {
	var table Table

	result := d.db.WithContext(ctx).First(&table, "id = ? AND restaurant_id = ?", id, restaurantID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Table{}, ErrTableNotFound
		}

		return Table{}, result.Error
	}

	return table, nil
}

func (d *TableDAO) ListByRestaurant(ctx context.Context, restaurantID uint) ([]Table, error) {
	var tables []Table

	result := d.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Order("number").Find(&tables)
	if result.Error != nil {
		return nil, result.Error
	}

	return tables, nil
}

func (d *TableDAO) UpdateColumns(ctx context.Context, restaurantID, id uint, columns map[string]interface{}) error {
	result := d.db.WithContext(ctx).
		Model(&Table{}).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Updates(columns)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ErrTableNumberExists
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

func (d *TableDAO) Delete(ctx context.Context, restaurantID, id uint) error {
	result := d.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Delete(&Table{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}
