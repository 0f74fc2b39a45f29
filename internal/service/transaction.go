package service

import (
	"context"
	"fmt"

	"github.com/restodesk/backoffice/internal/domain"
)

type TransactionRepository interface {
	List(ctx context.Context, filter domain.TransactionFilter) (domain.TransactionPage, error)
	Summary(ctx context.Context, filter domain.TransactionFilter) (domain.TransactionSummary, error)
}

type TransactionService struct {
	repo TransactionRepository
}

func NewTransactionService(repo TransactionRepository) *TransactionService {
	return &TransactionService{
		repo: repo,
	}
}

func (s *TransactionService) List(ctx context.Context, filter domain.TransactionFilter) (domain.TransactionPage, error) {
	if err := validateTransactionFilter(filter); err != nil {
		return domain.TransactionPage{}, err
	}

	page, err := s.repo.List(ctx, filter)
	if err != nil {
		return domain.TransactionPage{}, fmt.Errorf("s.repo.List -> %w", err)
	}

	return page, nil
}

func (s *TransactionService) Summary(ctx context.Context, filter domain.TransactionFilter) (domain.TransactionSummary, error) {
	if err := validateTransactionFilter(filter); err != nil {
		return domain.TransactionSummary{}, err
	}

	summary, err := s.repo.Summary(ctx, filter)
	if err != nil {
		return domain.TransactionSummary{}, fmt.Errorf("s.repo.Summary -> %w", err)
	}

	return summary, nil
}

func validateTransactionFilter(filter domain.TransactionFilter) error {
	if filter.Status != "" && !filter.Status.Valid() {
		return fmt.Errorf("%w: unknown transaction status %q", ErrInvalidArgument, filter.Status)
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return fmt.Errorf("%w: from must be before to", ErrInvalidArgument)
	}

	return nil
}
