package response

import (
	"github.com/restodesk/backoffice/internal/domain"
)

type TransactionList struct {
	domain.TransactionPage
	Summary domain.TransactionSummary `json:"summary"`
}
