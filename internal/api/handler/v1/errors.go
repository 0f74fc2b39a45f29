package v1

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/restodesk/backoffice/internal/api/handler/v1/response"
	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/service"
)

type notFound struct {
	err    error
	entity string
	param  string
}

var notFoundErrs = []notFound{
	{service.ErrTeamMemberNotFound, "team member", paramMemberID},
	{service.ErrTableNotFound, "table", paramTableID},
	{service.ErrRestaurantNotFound, "restaurant", paramRestaurantID},
	{service.ErrSnapshotNotFound, "onboarding", paramRestaurantID},
	{service.ErrUserNotFound, "user", ""},
}

var conflictErrs = []error{
	service.ErrSnapshotVersionConflict,
	service.ErrTeamMemberEmailExists,
	service.ErrTableNumberExists,
	service.ErrUserEmailExists,
}

// renderServiceErr maps a service error to its HTTP shape. op is the
// breadcrumb kept on internal errors, e.g. "v1.HandleX -> h.svc.Y".
func renderServiceErr(ctx *gin.Context, op string, err error) {
	for _, nf := range notFoundErrs {
		if errors.Is(err, nf.err) {
			value := "given"
			if nf.param != "" && ctx.Param(nf.param) != "" {
				value = ctx.Param(nf.param)
			}
			response.RenderErr(ctx, response.ErrNotFound(nf.entity, "id", value))
			return
		}
	}

	for _, c := range conflictErrs {
		if errors.Is(err, c) {
			response.RenderErr(ctx, response.ErrConflict(c))
			return
		}
	}

	var stepErr *domain.StepValidationError
	if errors.As(err, &stepErr) {
		response.RenderErr(ctx, response.ErrUnprocessable(stepErr.Message, int(stepErr.Step), nil))
		return
	}
	var incomplete *domain.IncompleteOnboardingError
	if errors.As(err, &incomplete) {
		missing := make([]int, len(incomplete.Missing))
		for i, s := range incomplete.Missing {
			missing[i] = int(s)
		}
		response.RenderErr(ctx, response.ErrUnprocessable(incomplete.Error(), -1, missing))
		return
	}
	if errors.Is(err, domain.ErrNotOnFinalStep) || errors.Is(err, domain.ErrAlreadyOnLastStep) {
		response.RenderErr(ctx, response.ErrUnprocessable(unwrapDetail(err), -1, nil))
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		response.RenderErr(ctx, response.ErrBadRequest(errors.New(invalidArgumentDetail(err))))
	case errors.Is(err, service.ErrDeleteConfirmationMismatch):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrDeleteConfirmationMismatch))
	case errors.Is(err, service.ErrIntegrationFailed):
		response.RenderErr(ctx, response.ErrBadGateway(fmt.Errorf("%s -> %w", op, err)))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

// invalidArgumentDetail keeps the caller-facing part of an ErrInvalidArgument
// chain, dropping breadcrumbs and the sentinel prefix.
func invalidArgumentDetail(err error) string {
	msg := err.Error()
	prefix := service.ErrInvalidArgument.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}

	return msg
}

func unwrapDetail(err error) string {
	for _, target := range []error{domain.ErrNotOnFinalStep, domain.ErrAlreadyOnLastStep} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return err.Error()
}
