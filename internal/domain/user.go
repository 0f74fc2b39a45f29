package domain

import (
	"strings"
	"time"
)

// Back-office operator roles. Only super admins manage operators and delete
// restaurants.
const (
	RoleSuperAdmin = "super_admin"
	RoleSupport    = "support"
)

type User struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	Password    string     `json:"-"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (u User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
