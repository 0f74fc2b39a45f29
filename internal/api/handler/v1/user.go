package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restodesk/backoffice/internal/domain"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// HandleListUsers godoc
// @Summary      List back-office operators
// @Description  Super admins first, then by name. Super admin only.
// @Tags         users
// @Produce      json
// @Success      200      {array}    domain.User
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/users [get]
// @Security     BearerAuth
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	users, err := h.svc.ListUsers(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListUsers -> h.svc.ListUsers", err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}
