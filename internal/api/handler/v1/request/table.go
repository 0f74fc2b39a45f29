package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errSectionTooLong = errors.New("section names must be at most 64 characters")

type TableRequest struct {
	// Number 0 picks the next free number on create.
	Number  int    `json:"number"`
	Section string `json:"section"`
}

func (req *TableRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Number, validation.Min(0)),
		validation.Field(&req.Section, validation.Length(0, 64)),
	)
}

type GenerateTablesRequest struct {
	Count    int      `json:"count"`
	Sections []string `json:"sections"`
}

func (req *GenerateTablesRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Count, validation.Required, validation.Min(1), validation.Max(200)),
		validation.Field(&req.Sections, validation.By(sectionNames)),
	)
}

func sectionNames(value interface{}) error {
	sections, _ := value.([]string)
	for _, s := range sections {
		if len(s) > 64 {
			return errSectionTooLong
		}
	}

	return nil
}

type QRCodeQuery struct {
	Size int `form:"size"`
}
