package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"github.com/restodesk/backoffice/internal/domain"
)

const (
	maxGeneratedTables = 200
	defaultQRSize      = 256
)

type TableRepository interface {
	Create(ctx context.Context, table domain.Table) (domain.Table, error)
	CreateBatch(ctx context.Context, tables []domain.Table) ([]domain.Table, error)
	FindByID(ctx context.Context, restaurantID, id uint) (domain.Table, error)
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]domain.Table, error)
	Update(ctx context.Context, table domain.Table) (domain.Table, error)
	SetActive(ctx context.Context, restaurantID, id uint, active bool) (domain.Table, error)
	Delete(ctx context.Context, restaurantID, id uint) error
}

type TableService struct {
	repo        TableRepository
	restaurants RestaurantFinder
	orderingURL string
}

func NewTableService(repo TableRepository, restaurants RestaurantFinder, publicOrderingURL string) *TableService {
	return &TableService{
		repo:        repo,
		restaurants: restaurants,
		orderingURL: publicOrderingURL,
	}
}

func (s *TableService) List(ctx context.Context, restaurantID uint) ([]domain.Table, error) {
	if _, err := s.restaurants.FindByID(ctx, restaurantID); err != nil {
		return nil, fmt.Errorf("s.restaurants.FindByID -> %w", err)
	}

	tables, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByRestaurant -> %w", err)
	}

	return s.withLinks(tables), nil
}

// Create adds one table. A zero number picks the next free one.
func (s *TableService) Create(ctx context.Context, table domain.Table) (domain.Table, error) {
	existing, err := s.List(ctx, table.RestaurantID)
	if err != nil {
		return domain.Table{}, err
	}
	if table.Number == 0 {
		table.Number = domain.NextTableNumber(existing)
	}
	if table.Number < 0 {
		return domain.Table{}, fmt.Errorf("%w: table number must be positive", ErrInvalidArgument)
	}
	table.Section = strings.TrimSpace(table.Section)
	table.IsActive = true
	table.Token = uuid.NewString()

	created, err := s.repo.Create(ctx, table)
	if err != nil {
		return domain.Table{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return s.withLink(created), nil
}

// Generate appends count tables after the highest existing number, spread
// over sections.
func (s *TableService) Generate(ctx context.Context, restaurantID uint, count int, sections []string) ([]domain.Table, error) {
	if count < 1 || count > maxGeneratedTables {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidArgument, maxGeneratedTables)
	}

	existing, err := s.List(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	planned := domain.PlanTables(restaurantID, domain.NextTableNumber(existing), count, sections, uuid.NewString)
	created, err := s.repo.CreateBatch(ctx, planned)
	if err != nil {
		return nil, fmt.Errorf("s.repo.CreateBatch -> %w", err)
	}

	return s.withLinks(created), nil
}

func (s *TableService) Update(ctx context.Context, table domain.Table) (domain.Table, error) {
	current, err := s.repo.FindByID(ctx, table.RestaurantID, table.ID)
	if err != nil {
		return domain.Table{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if table.Number < 1 {
		return domain.Table{}, fmt.Errorf("%w: table number must be positive", ErrInvalidArgument)
	}
	current.Number = table.Number
	current.Section = strings.TrimSpace(table.Section)

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return domain.Table{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return s.withLink(updated), nil
}

func (s *TableService) ToggleActive(ctx context.Context, restaurantID, id uint) (domain.Table, error) {
	current, err := s.repo.FindByID(ctx, restaurantID, id)
	if err != nil {
		return domain.Table{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	updated, err := s.repo.SetActive(ctx, restaurantID, id, !current.IsActive)
	if err != nil {
		return domain.Table{}, fmt.Errorf("s.repo.SetActive -> %w", err)
	}

	return s.withLink(updated), nil
}

func (s *TableService) Delete(ctx context.Context, restaurantID, id uint) error {
	if err := s.repo.Delete(ctx, restaurantID, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// QRCode renders the table link as a PNG of size pixels.
func (s *TableService) QRCode(ctx context.Context, restaurantID, id uint, size int) ([]byte, error) {
	table, err := s.repo.FindByID(ctx, restaurantID, id)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if size <= 0 {
		size = defaultQRSize
	}
	if size > 2048 {
		return nil, fmt.Errorf("%w: QR size must be at most 2048 pixels", ErrInvalidArgument)
	}

	png, err := qrcode.Encode(s.link(table), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode.Encode -> %w", err)
	}

	return png, nil
}

func (s *TableService) link(t domain.Table) string {
	return domain.TableLink(s.orderingURL, t.RestaurantID, t.Token)
}

func (s *TableService) withLink(t domain.Table) domain.Table {
	t.Link = s.link(t)
	return t
}

func (s *TableService) withLinks(tables []domain.Table) []domain.Table {
	for i := range tables {
		tables[i] = s.withLink(tables[i])
	}

	return tables
}
