package response

import (
	"time"

	"github.com/restodesk/backoffice/internal/domain"
)

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      domain.User `json:"user"`
}
