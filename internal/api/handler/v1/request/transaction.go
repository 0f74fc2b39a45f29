package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/restodesk/backoffice/internal/domain"
)

type ListTransactionsQuery struct {
	RestaurantID *uint      `form:"restaurant_id"`
	Status       string     `form:"status"`
	From         *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To           *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Page         int        `form:"page"`
	PageSize     int        `form:"page_size"`
}

func (q *ListTransactionsQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Status, validation.In(
			string(domain.TransactionPending),
			string(domain.TransactionSucceeded),
			string(domain.TransactionFailed),
			string(domain.TransactionRefunded),
		)),
		validation.Field(&q.Page, validation.Min(0)),
		validation.Field(&q.PageSize, validation.Min(0), validation.Max(domain.MaxPageSize)),
	)
}

func (q *ListTransactionsQuery) Filter() domain.TransactionFilter {
	return domain.TransactionFilter{
		RestaurantID: q.RestaurantID,
		Status:       domain.TransactionStatus(q.Status),
		From:         q.From,
		To:           q.To,
		Page:         q.Page,
		PageSize:     q.PageSize,
	}
}
