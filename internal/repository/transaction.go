package repository

import (
	"context"
	"fmt"

	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/repository/dao"
)

type TransactionDAO interface {
	Insert(ctx context.Context, transaction dao.Transaction) (dao.Transaction, error)
	List(ctx context.Context, q dao.TransactionListQuery) ([]dao.Transaction, int64, error)
	Totals(ctx context.Context, q dao.TransactionListQuery) (dao.TransactionTotals, error)
}

type TransactionRepository struct {
	dao TransactionDAO
}

func NewTransactionRepository(dao TransactionDAO) *TransactionRepository {
	return &TransactionRepository{
		dao: dao,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	created, err := r.dao.Insert(ctx, dao.Transaction{
		RestaurantID:  t.RestaurantID,
		TableID:       t.TableID,
		AmountCents:   t.AmountCents,
		FeeCents:      t.FeeCents,
		TipCents:      t.TipCents,
		Currency:      t.Currency,
		Status:        string(t.Status),
		PaymentMethod: t.PaymentMethod,
		ExternalRef:   t.ExternalRef,
		CreatedAt:     t.CreatedAt,
	})
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return transactionDaoToDomain(created), nil
}

func (r *TransactionRepository) List(ctx context.Context, filter domain.TransactionFilter) (domain.TransactionPage, error) {
	page, size := domain.NormalizePage(filter.Page, filter.PageSize)
	q := transactionQuery(filter)
	q.Offset = domain.PageOffset(page, size)
	q.Limit = size

	rows, total, err := r.dao.List(ctx, q)
	if err != nil {
		return domain.TransactionPage{}, fmt.Errorf("r.dao.List -> %w", err)
	}

	items := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		items = append(items, transactionDaoToDomain(row))
	}

	return domain.TransactionPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: size,
	}, nil
}

func (r *TransactionRepository) Summary(ctx context.Context, filter domain.TransactionFilter) (domain.TransactionSummary, error) {
	totals, err := r.dao.Totals(ctx, transactionQuery(filter))
	if err != nil {
		return domain.TransactionSummary{}, fmt.Errorf("r.dao.Totals -> %w", err)
	}

	return domain.TransactionSummary{
		Count:       totals.Count,
		AmountCents: totals.AmountCents,
		FeeCents:    totals.FeeCents,
		TipCents:    totals.TipCents,
	}, nil
}

func transactionQuery(filter domain.TransactionFilter) dao.TransactionListQuery {
	return dao.TransactionListQuery{
		RestaurantID: filter.RestaurantID,
		Status:       string(filter.Status),
		From:         filter.From,
		To:           filter.To,
	}
}

func transactionDaoToDomain(t dao.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:            t.ID,
		RestaurantID:  t.RestaurantID,
		TableID:       t.TableID,
		AmountCents:   t.AmountCents,
		FeeCents:      t.FeeCents,
		TipCents:      t.TipCents,
		Currency:      t.Currency,
		Status:        domain.TransactionStatus(t.Status),
		PaymentMethod: t.PaymentMethod,
		ExternalRef:   t.ExternalRef,
		CreatedAt:     t.CreatedAt,
	}
}
