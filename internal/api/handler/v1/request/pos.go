package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/restodesk/backoffice/internal/domain"
)

type POSRequest struct {
	Provider string `json:"provider"`
	Username string `json:"username"`
	// Password is the POS password or API key. Empty keeps the stored one.
	Password string `json:"password"`
	Port     int    `json:"port"`
	BaseURL  string `json:"base_url"`
}

func (req *POSRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Provider, validation.Required),
		validation.Field(&req.Port, validation.Min(0), validation.Max(65535)),
		validation.Field(&req.BaseURL, validation.Length(0, 2048)),
	)
}

func (req *POSRequest) Input() domain.POSInput {
	return domain.POSInput{
		Provider: req.Provider,
		Username: req.Username,
		Secret:   req.Password,
		Port:     req.Port,
		BaseURL:  req.BaseURL,
	}
}

type POSBaseURLQuery struct {
	Provider string `form:"provider"`
	Port     int    `form:"port"`
	BaseURL  string `form:"base_url"`
}

func (q *POSBaseURLQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Provider, validation.Required),
	)
}
