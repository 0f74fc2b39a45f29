package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/service"
)

// VersionRequest carries the snapshot version the caller last saw.
type VersionRequest struct {
	Version int64 `json:"version"`
}

func (req *VersionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Version, validation.Min(int64(0))),
	)
}

type PersonnelEntry struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	IsRestaurantAdmin bool   `json:"is_restaurant_admin"`
	IsRestaurantStaff bool   `json:"is_restaurant_staff"`
}

func (e PersonnelEntry) Validate() error {
	return validation.ValidateStruct(
		&e,
		validation.Field(&e.Email, is.Email),
		validation.Field(&e.Phone, validation.Length(0, 64)),
	)
}

// StepRequest is the body of a step save. Only the block matching the step
// in the path is read.
type StepRequest struct {
	Version   int64            `json:"version"`
	Personnel []PersonnelEntry `json:"personnel"`
	POS       *POSRequest      `json:"pos"`
	Tables    *struct {
		TableCount int      `json:"table_count"`
		Sections   []string `json:"sections"`
	} `json:"tables"`
	Reviews *struct {
		ReviewLink string `json:"review_link"`
	} `json:"reviews"`
	Messaging *struct {
		Phone string `json:"phone"`
	} `json:"messaging"`
}

func (req *StepRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Version, validation.Min(int64(0))),
		validation.Field(&req.Personnel),
	)
}

// Input converts the body to the service form. Personnel is kept as an empty
// list rather than nil so that clearing the roster is possible.
func (req *StepRequest) Input() service.StepInput {
	var in service.StepInput

	in.Personnel = make([]domain.PersonnelEntry, 0, len(req.Personnel))
	for _, p := range req.Personnel {
		in.Personnel = append(in.Personnel, domain.PersonnelEntry{
			Name:              p.Name,
			Email:             p.Email,
			Phone:             p.Phone,
			IsRestaurantAdmin: p.IsRestaurantAdmin,
			IsRestaurantStaff: p.IsRestaurantStaff,
		})
	}
	if req.POS != nil {
		in.POS = req.POS.Input()
	}
	if req.Tables != nil {
		in.Tables = domain.TablesForm{TableCount: req.Tables.TableCount, Sections: req.Tables.Sections}
	}
	if req.Reviews != nil {
		in.Reviews = domain.ReviewsForm{ReviewLink: req.Reviews.ReviewLink}
	}
	if req.Messaging != nil {
		in.Messaging = domain.MessagingForm{Phone: req.Messaging.Phone}
	}

	return in
}
