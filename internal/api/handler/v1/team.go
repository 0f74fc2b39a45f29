package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restodesk/backoffice/internal/api/handler/v1/request"
	"github.com/restodesk/backoffice/internal/domain"
)

type TeamService interface {
	List(ctx context.Context, restaurantID uint) ([]domain.TeamMember, error)
	Create(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	Update(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	ToggleActive(ctx context.Context, restaurantID, id uint) (domain.TeamMember, error)
	Delete(ctx context.Context, restaurantID, id uint) error
}

type TeamHandler struct {
	svc TeamService
}

func NewTeamHandler(svc TeamService) *TeamHandler {
	return &TeamHandler{
		svc: svc,
	}
}

// HandleListTeam godoc
// @Summary      List the team of a restaurant
// @Tags         team
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Success      200      {array}    domain.TeamMember
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/team [get]
// @Security     BearerAuth
func (h *TeamHandler) HandleListTeam(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}

	members, err := h.svc.List(ctx.Request.Context(), restaurantID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListTeam -> h.svc.List", err)
		return
	}

	ctx.JSON(http.StatusOK, members)
}

// HandleCreateTeamMember godoc
// @Summary      Add a team member
// @Description  Exactly one of is_restaurant_admin and is_restaurant_staff must be set.
// @Tags         team
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        request   body      request.TeamMemberRequest true "request body"
// @Success      201      {object}   domain.TeamMember
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/team [post]
// @Security     BearerAuth
func (h *TeamHandler) HandleCreateTeamMember(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	var req request.TeamMemberRequest
	if !bindJSON(ctx, &req) {
		return
	}

	member, err := h.svc.Create(ctx.Request.Context(), req.Member(restaurantID))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateTeamMember -> h.svc.Create", err)
		return
	}

	ctx.JSON(http.StatusCreated, member)
}

// HandleUpdateTeamMember godoc
// @Summary      Update a team member
// @Tags         team
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        memberID       path      int  true  "team member ID"
// @Param        request   body      request.TeamMemberRequest true "request body"
// @Success      200      {object}   domain.TeamMember
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/team/{memberID} [put]
// @Security     BearerAuth
func (h *TeamHandler) HandleUpdateTeamMember(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	id, ok := pathID(ctx, paramMemberID)
	if !ok {
		return
	}
	var req request.TeamMemberRequest
	if !bindJSON(ctx, &req) {
		return
	}

	member := req.Member(restaurantID)
	member.ID = id
	updated, err := h.svc.Update(ctx.Request.Context(), member)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateTeamMember -> h.svc.Update", err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleToggleTeamMemberActive godoc
// @Summary      Activate or deactivate a team member
// @Tags         team
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        memberID       path      int  true  "team member ID"
// @Success      200      {object}   domain.TeamMember
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/team/{memberID}/toggle-active [post]
// @Security     BearerAuth
func (h *TeamHandler) HandleToggleTeamMemberActive(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	id, ok := pathID(ctx, paramMemberID)
	if !ok {
		return
	}

	member, err := h.svc.ToggleActive(ctx.Request.Context(), restaurantID, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleToggleTeamMemberActive -> h.svc.ToggleActive", err)
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// HandleDeleteTeamMember godoc
// @Summary      Remove a team member
// @Tags         team
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        memberID       path      int  true  "team member ID"
// @Success      204
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/team/{memberID} [delete]
// @Security     BearerAuth
func (h *TeamHandler) HandleDeleteTeamMember(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	id, ok := pathID(ctx, paramMemberID)
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), restaurantID, id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteTeamMember -> h.svc.Delete", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
