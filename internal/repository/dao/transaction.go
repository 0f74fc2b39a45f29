package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Transaction struct {
	ID            uint   `gorm:"primaryKey"`
	RestaurantID  uint   `gorm:"not null;index"`
	TableID       *uint
	AmountCents   int64  `gorm:"not null"`
	FeeCents      int64  `gorm:"not null"`
	TipCents      int64  `gorm:"not null"`
	Currency      string `gorm:"size:3;not null"`
	Status        string `gorm:"size:16;not null;index"`
	PaymentMethod string `gorm:"size:32"`
	ExternalRef   string `gorm:"size:255"`
	CreatedAt     time.Time `gorm:"index"`
}

type TransactionListQuery struct {
	RestaurantID *uint
	Status       string
	From         *time.Time
	To           *time.Time
	Offset       int
	Limit        int
}

type TransactionTotals struct {
	Count       int64
	AmountCents int64
	FeeCents    int64
	TipCents    int64
}

type TransactionDAO struct {
	db *gorm.DB
}

func NewTransactionDAO(db *gorm.DB) *TransactionDAO {
	return &TransactionDAO{
		db: db,
	}
}

func (d *TransactionDAO) Insert(ctx context.Context, transaction Transaction) (Transaction, error) {
	if err := d.db.WithContext(ctx).Create(&transaction).Error; err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

func (d *TransactionDAO) filtered(ctx context.Context, q TransactionListQuery) *gorm.DB {
	tx := d.db.WithContext(ctx).Model(&Transaction{})
	if q.RestaurantID != nil {
		tx = tx.Where("restaurant_id = ?", *q.RestaurantID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.From != nil {
		tx = tx.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		tx = tx.Where("created_at < ?", *q.To)
	}

	return tx
}

func (d *TransactionDAO) List(ctx context.Context, q TransactionListQuery) ([]Transaction, int64, error) {
	var total int64
	if err := d.filtered(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []Transaction
	result := d.filtered(ctx, q).
		Order("created_at DESC").
		Order("id DESC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&transactions)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return transactions, total, nil
}

func (d *TransactionDAO) Totals(ctx context.Context, q TransactionListQuery) (TransactionTotals, error) {
	var totals TransactionTotals

	result := d.filtered(ctx, q).
		Select("COUNT(*) AS count, " +
			"COALESCE(SUM(amount_cents), 0) AS amount_cents, " +
			"COALESCE(SUM(fee_cents), 0) AS fee_cents, " +
			"COALESCE(SUM(tip_cents), 0) AS tip_cents").
		Scan(&totals)
	if result.Error != nil {
		return TransactionTotals{}, result.Error
	}

	return totals, nil
}
