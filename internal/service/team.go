package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/restodesk/backoffice/internal/domain"
)

type TeamMemberRepository interface {
	Create(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	FindByID(ctx context.Context, restaurantID, id uint) (domain.TeamMember, error)
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]domain.TeamMember, error)
	Update(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	SetActive(ctx context.Context, restaurantID, id uint, active bool) (domain.TeamMember, error)
	Delete(ctx context.Context, restaurantID, id uint) error
}

type RestaurantFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Restaurant, error)
}

type TeamService struct {
	repo        TeamMemberRepository
	restaurants RestaurantFinder
}

func NewTeamService(repo TeamMemberRepository, restaurants RestaurantFinder) *TeamService {
	return &TeamService{
		repo:        repo,
		restaurants: restaurants,
	}
}

func (s *TeamService) List(ctx context.Context, restaurantID uint) ([]domain.TeamMember, error) {
	if err := s.ensureRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}

	members, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByRestaurant -> %w", err)
	}

	return members, nil
}

func (s *TeamService) Create(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	if err := s.ensureRestaurant(ctx, member.RestaurantID); err != nil {
		return domain.TeamMember{}, err
	}
	if err := normalizeMember(&member); err != nil {
		return domain.TeamMember{}, err
	}
	member.IsActive = true

	created, err := s.repo.Create(ctx, member)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Update replaces the editable fields. The active flag is kept, use
// ToggleActive to change it.
func (s *TeamService) Update(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	current, err := s.repo.FindByID(ctx, member.RestaurantID, member.ID)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if err = normalizeMember(&member); err != nil {
		return domain.TeamMember{}, err
	}
	member.IsActive = current.IsActive

	updated, err := s.repo.Update(ctx, member)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *TeamService) ToggleActive(ctx context.Context, restaurantID, id uint) (domain.TeamMember, error) {
	current, err := s.repo.FindByID(ctx, restaurantID, id)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	updated, err := s.repo.SetActive(ctx, restaurantID, id, !current.IsActive)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("s.repo.SetActive -> %w", err)
	}

	return updated, nil
}

func (s *TeamService) Delete(ctx context.Context, restaurantID, id uint) error {
	if err := s.repo.Delete(ctx, restaurantID, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *TeamService) ensureRestaurant(ctx context.Context, id uint) error {
	if _, err := s.restaurants.FindByID(ctx, id); err != nil {
		return fmt.Errorf("s.restaurants.FindByID -> %w", err)
	}

	return nil
}

func normalizeMember(m *domain.TeamMember) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	m.Phone = strings.TrimSpace(m.Phone)

	if err := m.ValidateRoles(); err != nil {
		if errors.Is(err, domain.ErrInvalidRoleFlags) {
			return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return err
	}

	return nil
}
