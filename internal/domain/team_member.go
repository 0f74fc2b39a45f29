package domain

import (
	"errors"
	"time"
)

var ErrInvalidRoleFlags = errors.New("a team member must be either restaurant admin or restaurant staff")

// TeamMember keeps the two role flags the dashboard has always exposed.
// Exactly one of them must be set, see ValidateRoles.
type TeamMember struct {
	ID                uint      `json:"id"`
	RestaurantID      uint      `json:"restaurant_id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	IsRestaurantAdmin bool      `json:"is_restaurant_admin"`
	IsRestaurantStaff bool      `json:"is_restaurant_staff"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (m TeamMember) ValidateRoles() error {
	return validateRoleFlags(m.IsRestaurantAdmin, m.IsRestaurantStaff)
}

func validateRoleFlags(admin, staff bool) error {
	if admin == staff {
		return ErrInvalidRoleFlags
	}

	return nil
}
