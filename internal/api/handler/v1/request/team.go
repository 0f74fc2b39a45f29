package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/restodesk/backoffice/internal/domain"
)

type TeamMemberRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	IsRestaurantAdmin bool   `json:"is_restaurant_admin"`
	IsRestaurantStaff bool   `json:"is_restaurant_staff"`
}

func (req *TeamMemberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Length(0, 64)),
	)
}

func (req *TeamMemberRequest) Member(restaurantID uint) domain.TeamMember {
	return domain.TeamMember{
		RestaurantID:      restaurantID,
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		IsRestaurantAdmin: req.IsRestaurantAdmin,
		IsRestaurantStaff: req.IsRestaurantStaff,
	}
}
