package repository

import (
	"context"
	"fmt"

	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/repository/dao"
)

var ErrTeamMemberNotFound = dao.ErrTeamMemberNotFound

type TeamMemberDAO interface {
	Insert(ctx context.Context, member dao.TeamMember) (dao.TeamMember, error)
	FindByID(ctx context.Context, restaurantID, id uint) (dao.TeamMember, error)
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]dao.TeamMember, error)
	UpdateColumns(ctx context.Context, restaurantID, id uint, columns map[string]interface{}) error
	Delete(ctx context.Context, restaurantID, id uint) error
}

type TeamMemberRepository struct {
	dao TeamMemberDAO
}

func NewTeamMemberRepository(dao TeamMemberDAO) *TeamMemberRepository {
	return &TeamMemberRepository{
		dao: dao,
	}
}

func (r *TeamMemberRepository) Create(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	created, err := r.dao.Insert(ctx, teamMemberDomainToDao(member))
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return teamMemberDaoToDomain(created), nil
}

func (r *TeamMemberRepository) FindByID(ctx context.Context, restaurantID, id uint) (domain.TeamMember, error) {
	found, err := r.dao.FindByID(ctx, restaurantID, id)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return teamMemberDaoToDomain(found), nil
}

func (r *TeamMemberRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]domain.TeamMember, error) {
	rows, err := r.dao.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByRestaurant -> %w", err)
	}

	members := make([]domain.TeamMember, 0, len(rows))
	for _, row := range rows {
		members = append(members, teamMemberDaoToDomain(row))
	}

	return members, nil
}

func (r *TeamMemberRepository) Update(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	err := r.dao.UpdateColumns(ctx, member.RestaurantID, member.ID, map[string]interface{}{
		"name":                member.Name,
		"email":               member.Email,
		"phone":               member.Phone,
		"is_restaurant_admin": member.IsRestaurantAdmin,
		"is_restaurant_staff": member.IsRestaurantStaff,
		"is_active":           member.IsActive,
	})
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("r.dao.UpdateColumns -> %w", err)
	}

	return r.FindByID(ctx, member.RestaurantID, member.ID)
}

func (r *TeamMemberRepository) SetActive(ctx context.Context, restaurantID, id uint, active bool) (domain.TeamMember, error) {
	if err := r.dao.UpdateColumns(ctx, restaurantID, id, map[string]interface{}{"is_active": active}); err != nil {
		return domain.TeamMember{}, fmt.Errorf("r.dao.UpdateColumns -> %w", err)
	}

	return r.FindByID(ctx, restaurantID, id)
}

func (r *TeamMemberRepository) Delete(ctx context.Context, restaurantID, id uint) error {
	if err := r.dao.Delete(ctx, restaurantID, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func teamMemberDomainToDao(m domain.TeamMember) dao.TeamMember {
	return dao.TeamMember{
		ID:                m.ID,
		RestaurantID:      m.RestaurantID,
		Name:              m.Name,
		Email:             m.Email,
		Phone:             m.Phone,
		IsRestaurantAdmin: m.IsRestaurantAdmin,
		IsRestaurantStaff: m.IsRestaurantStaff,
		IsActive:          m.IsActive,
	}
}

func teamMemberDaoToDomain(m dao.TeamMember) domain.TeamMember {
	return domain.TeamMember{
		ID:                m.ID,
		RestaurantID:      m.RestaurantID,
		Name:              m.Name,
		Email:             m.Email,
		Phone:             m.Phone,
		IsRestaurantAdmin: m.IsRestaurantAdmin,
		IsRestaurantStaff: m.IsRestaurantStaff,
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
