package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	List(ctx context.Context) ([]dao.User, error)
	TouchLogin(ctx context.Context, id uint, at time.Time) error
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	row := userToDAO(user)
	row.Email = domain.NormalizeEmail(row.Email)

	created, err := r.dao.Insert(ctx, row)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return userToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return userToDomain(found), nil
}

// FindByEmail matches regardless of case and surrounding blanks.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return userToDomain(found), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = userToDomain(row)
	}

	return users, nil
}

func (r *UserRepository) RecordLogin(ctx context.Context, id uint, at time.Time) error {
	if err := r.dao.TouchLogin(ctx, id, at); err != nil {
		return fmt.Errorf("r.dao.TouchLogin -> %w", err)
	}

	return nil
}

func userToDAO(u domain.User) dao.User {
	return dao.User{
		ID:          u.ID,
		Email:       u.Email,
		Password:    u.Password,
		Role:        u.Role,
		Name:        u.Name,
		LastLoginAt: u.LastLoginAt,
	}
}

func userToDomain(u dao.User) domain.User {
	return domain.User{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Password:    u.Password,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
