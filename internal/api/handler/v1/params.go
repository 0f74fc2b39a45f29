package v1

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/restodesk/backoffice/internal/api/handler/v1/response"
)

const (
	paramRestaurantID = "restaurantID"
	paramMemberID     = "memberID"
	paramTableID      = "tableID"
	paramStep         = "step"
)

// pathID parses a numeric path parameter and renders a 400 when it is not
// one.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("%s must be a positive integer", name)))
		return 0, false
	}

	return uint(id), true
}

// bindJSON binds and validates the body, rendering a 400 on either failure.
func bindJSON(ctx *gin.Context, req interface{ Validate() error }) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return false
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return false
	}

	return true
}

func bindQuery(ctx *gin.Context, q interface{ Validate() error }) bool {
	if err := ctx.ShouldBindQuery(q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return false
	}
	if err := q.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return false
	}

	return true
}
