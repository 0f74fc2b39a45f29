package domain

import (
	"time"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionSucceeded TransactionStatus = "succeeded"
	TransactionFailed    TransactionStatus = "failed"
	TransactionRefunded  TransactionStatus = "refunded"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionPending, TransactionSucceeded, TransactionFailed, TransactionRefunded:
		return true
	}

	return false
}

type Transaction struct {
	ID            uint              `json:"id"`
	RestaurantID  uint              `json:"restaurant_id"`
	TableID       *uint             `json:"table_id,omitempty"`
	AmountCents   int64             `json:"amount_cents"`
	FeeCents      int64             `json:"fee_cents"`
	TipCents      int64             `json:"tip_cents"`
	Currency      string            `json:"currency"`
	Status        TransactionStatus `json:"status"`
	PaymentMethod string            `json:"payment_method"`
	ExternalRef   string            `json:"external_ref"`
	CreatedAt     time.Time         `json:"created_at"`
}

type TransactionFilter struct {
	RestaurantID *uint
	Status       TransactionStatus
	From         *time.Time
	To           *time.Time
	Page         int
	PageSize     int
}

type TransactionPage struct {
	Items    []Transaction `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

type TransactionSummary struct {
	Count       int64 `json:"count"`
	AmountCents int64 `json:"amount_cents"`
	FeeCents    int64 `json:"fee_cents"`
	TipCents    int64 `json:"tip_cents"`
}
