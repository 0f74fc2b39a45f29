package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/restodesk/backoffice/internal/domain"
)

type PaymentSettingsRequest struct {
	ServiceFeeBps int    `json:"service_fee_bps"`
	FixedFeeCents int64  `json:"fixed_fee_cents"`
	Currency      string `json:"currency"`
}

func (req *PaymentSettingsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ServiceFeeBps, validation.Min(0), validation.Max(10000)),
		validation.Field(&req.FixedFeeCents, validation.Min(int64(0))),
		validation.Field(&req.Currency, validation.Required, currencyCode),
	)
}

func (req *PaymentSettingsRequest) Fees() domain.FeeConfig {
	return domain.FeeConfig{
		ServiceFeeBps: req.ServiceFeeBps,
		FixedFeeCents: req.FixedFeeCents,
		Currency:      req.Currency,
	}
}
