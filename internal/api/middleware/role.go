package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/restodesk/backoffice/internal/api/handler/v1/response"
	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/service"
)

const ContextKeyUser = "user"

var errRoleNotAllowed = errors.New("role not allowed")

type UserLoader interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// RequireRole loads the authenticated user and rejects anyone whose role is
// not listed. It must run after VerifyJWT.
func RequireRole(users UserLoader, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(ctx *gin.Context) {
		user, ok := CurrentUser(ctx)
		if !ok {
			userID, found := UserID(ctx)
			if !found {
				response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
				return
			}

			var err error
			user, err = users.GetUser(ctx.Request.Context(), userID)
			if err != nil {
				if errors.Is(err, service.ErrUserNotFound) {
					response.RenderErr(ctx, response.ErrUnauthorized(err))
					return
				}
				err = fmt.Errorf("middleware.RequireRole -> users.GetUser -> %w", err)
				response.RenderErr(ctx, response.ErrInternalServerError(err))
				return
			}
			ctx.Set(ContextKeyUser, user)
		}

		if !allowed[user.Role] {
			response.RenderErr(ctx, response.ErrPermissionDenied(errRoleNotAllowed))
			return
		}

		ctx.Next()
	}
}

func CurrentUser(ctx *gin.Context) (domain.User, bool) {
	u, ok := ctx.Get(ContextKeyUser)
	if !ok {
		return domain.User{}, false
	}
	user, ok := u.(domain.User)

	return user, ok
}
