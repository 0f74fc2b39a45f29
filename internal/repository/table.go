package repository

import (
	"context"
	"fmt"

	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/repository/dao"
)

var ErrTableNotFound = dao.ErrTableNotFound

type TableDAO interface {
	Insert(ctx context.Context, table dao.Table) (dao.Table, error)
	InsertBatch(ctx context.Context, tables []dao.Table) ([]dao.Table, error)
	FindByID(ctx context.Context, restaurantID, id uint) (dao.Table, error)
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]dao.Table, error)
	UpdateColumns(ctx context.Context, restaurantID, id uint, columns map[string]interface{}) error
	Delete(ctx context.Context, restaurantID, id uint) error
}

type TableRepository struct {
	dao TableDAO
}

func NewTableRepository(dao TableDAO) *TableRepository {
	return &TableRepository{
		dao: dao,
	}
}

func (r *TableRepository) Create(ctx context.Context, table domain.Table) (domain.Table, error) {
	created, err := r.dao.Insert(ctx, tableDomainToDao(table))
	if err != nil {
		return domain.Table{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return tableDaoToDomain(created), nil
}

func (r *TableRepository) CreateBatch(ctx context.Context, tables []domain.Table) ([]domain.Table, error) {
	rows := make([]dao.Table, 0, len(tables))
	for _, t := range tables {
		rows = append(rows, tableDomainToDao(t))
	}

	created, err := r.dao.InsertBatch(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertBatch -> %w", err)
	}

	out := make([]domain.Table, 0, len(created))
	for _, row := range created {
		out = append(out, tableDaoToDomain(row))
	}

	return out, nil
}

func (r *TableRepository) FindByID(ctx context.Context, restaurantID, id uint) (domain.Table, error) {
	found, err := r.dao.FindByID(ctx, restaurantID, id)
	if err != nil {
		return domain.Table{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return tableDaoToDomain(found), nil
}

func (r *TableRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]domain.Table, error) {
	rows, err := r.dao.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByRestaurant -> %w", err)
	}

	tables := make([]domain.Table, 0, len(rows))
	for _, row := range rows {
		tables = append(tables, tableDaoToDomain(row))
	}

	return tables, nil
}

func (r *TableRepository) Update(ctx context.Context, table domain.Table) (domain.Table, error) {
	err := r.dao.UpdateColumns(ctx, table.RestaurantID, table.ID, map[string]interface{}{
		"number":    table.Number,
		"section":   table.Section,
		"is_active": table.IsActive,
	})
	if err != nil {
		return domain.Table{}, fmt.Errorf("r.dao.UpdateColumns -> %w", err)
	}

	return r.FindByID(ctx, table.RestaurantID, table.ID)
}

func (r *TableRepository) SetActive(ctx context.Context, restaurantID, id uint, active bool) (domain.Table, error) {
	if err := r.dao.UpdateColumns(ctx, restaurantID, id, map[string]interface{}{"is_active": active}); err != nil {
		return domain.Table{}, fmt.Errorf("r.dao.UpdateColumns -> %w", err)
	}

	return r.FindByID(ctx, restaurantID, id)
}

func (r *TableRepository) Delete(ctx context.Context, restaurantID, id uint) error {
	if err := r.dao.Delete(ctx, restaurantID, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func tableDomainToDao(t domain.Table) dao.Table {
	return dao.Table{
		ID:           t.ID,
		RestaurantID: t.RestaurantID,
		Number:       t.Number,
		Section:      t.Section,
		IsActive:     t.IsActive,
		Token:        t.Token,
	}
}

func tableDaoToDomain(t dao.Table) domain.Table {
	return domain.Table{
		ID:           t.ID,
		RestaurantID: t.RestaurantID,
		Number:       t.Number,
		Section:      t.Section,
		IsActive:     t.IsActive,
		Token:        t.Token,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
