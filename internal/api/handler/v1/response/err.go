package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthCookie carries the bearer token for browser clients.
const AuthCookie = "auth_token"

// Err is the body of every failed request. Err itself is logged, never
// rendered.
type Err struct {
	HTTPStatusCode int   `json:"-"`
	Detail         string `json:"detail"`
	Step           *int   `json:"step,omitempty"`
	MissingSteps   []int  `json:"missing_steps,omitempty"`
	Err            error  `json:"-"`
}

func (e *Err) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return e.Detail
}

// RenderErr writes e and aborts the chain. A 401 also drops the auth cookie
// so a browser stops sending a dead token.
func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Int("status", e.HTTPStatusCode),
			zap.Error(e.Err),
		)
	}
	if e.HTTPStatusCode == http.StatusUnauthorized {
		ClearAuthCookie(ctx)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ClearAuthCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(AuthCookie, "", -1, "/", "", false, true)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Detail:         err.Error(),
		Err:            err,
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		Detail:         "authentication required",
		Err:            err,
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		Detail:         "wrong email or password",
		Err:            err,
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusForbidden,
		Detail:         "you are not allowed to perform this action",
		Err:            err,
	}
}

func ErrNotFound(entity, field string, value interface{}) *Err {
	detail := fmt.Sprintf("%s with %s %v not found", entity, field, value)

	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Detail:         detail,
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusConflict,
		Detail:         err.Error(),
		Err:            err,
	}
}

// ErrUnprocessable reports an onboarding rule violation. step is the step
// the message belongs to, -1 when it belongs to none.
func ErrUnprocessable(detail string, step int, missing []int) *Err {
	e := &Err{
		HTTPStatusCode: http.StatusUnprocessableEntity,
		Detail:         detail,
		MissingSteps:   missing,
	}
	if step >= 0 {
		e.Step = &step
	}

	return e
}

func ErrBadGateway(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadGateway,
		Detail:         "an upstream service failed, try again later",
		Err:            err,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		Detail:         "internal server error",
		Err:            err,
	}
}
