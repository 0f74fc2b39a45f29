package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restodesk/backoffice/internal/api/handler/v1/request"
	"github.com/restodesk/backoffice/internal/api/handler/v1/response"
	"github.com/restodesk/backoffice/internal/domain"
)

type RestaurantService interface {
	List(ctx context.Context, filter domain.RestaurantFilter) (domain.RestaurantPage, error)
	Get(ctx context.Context, id uint) (domain.Restaurant, error)
	Create(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error)
	Update(ctx context.Context, id uint, update domain.RestaurantUpdate) (domain.Restaurant, error)
	ToggleActive(ctx context.Context, id uint) (domain.Restaurant, error)
	Delete(ctx context.Context, id uint, confirmName string) error
}

type RestaurantHandler struct {
	svc RestaurantService
}

func NewRestaurantHandler(svc RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		svc: svc,
	}
}

// HandleListRestaurants godoc
// @Summary      List restaurants
// @Tags         restaurants
// @Produce      json
// @Param        search     query     string  false  "matches name, city or email"
// @Param        is_active  query     bool    false  "active filter"
// @Param        page       query     int     false  "1-based page"
// @Param        page_size  query     int     false  "page size, at most 100"
// @Success      200      {object}   domain.RestaurantPage
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants [get]
// @Security     BearerAuth
func (h *RestaurantHandler) HandleListRestaurants(ctx *gin.Context) {
	var q request.ListRestaurantsQuery
	if !bindQuery(ctx, &q) {
		return
	}

	page, err := h.svc.List(ctx.Request.Context(), q.Filter())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListRestaurants -> h.svc.List", err)
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleGetRestaurant godoc
// @Summary      Get a restaurant with its staff and tables
// @Tags         restaurants
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Success      200      {object}   domain.Restaurant
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID} [get]
// @Security     BearerAuth
func (h *RestaurantHandler) HandleGetRestaurant(ctx *gin.Context) {
	id, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}

	restaurant, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetRestaurant -> h.svc.Get", err)
		return
	}

	ctx.JSON(http.StatusOK, restaurant)
}

// HandleCreateRestaurant godoc
// @Summary      Create a restaurant
// @Tags         restaurants
// @Produce      json
// @Param        request   body      request.CreateRestaurantRequest true "request body"
// @Success      201      {object}   domain.Restaurant
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants [post]
// @Security     BearerAuth
func (h *RestaurantHandler) HandleCreateRestaurant(ctx *gin.Context) {
	var req request.CreateRestaurantRequest
	if !bindJSON(ctx, &req) {
		return
	}

	restaurant, err := h.svc.Create(ctx.Request.Context(), req.Restaurant())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateRestaurant -> h.svc.Create", err)
		return
	}

	ctx.JSON(http.StatusCreated, restaurant)
}

// HandleUpdateRestaurant godoc
// @Summary      Update a restaurant profile
// @Tags         restaurants
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        request   body      request.UpdateRestaurantRequest true "request body"
// @Success      200      {object}   domain.Restaurant
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID} [patch]
// @Security     BearerAuth
func (h *RestaurantHandler) HandleUpdateRestaurant(ctx *gin.Context) {
	id, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	var req request.UpdateRestaurantRequest
	if !bindJSON(ctx, &req) {
		return
	}

	restaurant, err := h.svc.Update(ctx.Request.Context(), id, req.Update())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateRestaurant -> h.svc.Update", err)
		return
	}

	ctx.JSON(http.StatusOK, restaurant)
}

// HandleToggleRestaurantActive godoc
// @Summary      Archive or re-activate a restaurant
// @Description  Flips is_active only. Staff, tables and POS settings are untouched.
// @Tags         restaurants
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Success      200      {object}   domain.Restaurant
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/toggle-active [post]
// @Security     BearerAuth
func (h *RestaurantHandler) HandleToggleRestaurantActive(ctx *gin.Context) {
	id, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}

	restaurant, err := h.svc.ToggleActive(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleToggleRestaurantActive -> h.svc.ToggleActive", err)
		return
	}

	ctx.JSON(http.StatusOK, restaurant)
}

// HandleDeleteRestaurant godoc
// @Summary      Delete a restaurant
// @Description  Irreversible. confirm_name must equal the restaurant name exactly, in the body or the query string.
// @Tags         restaurants
// @Param        restaurantID   path      int     true   "restaurant ID"
// @Param        confirm_name   query     string  false  "exact restaurant name"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID} [delete]
// @Security     BearerAuth
func (h *RestaurantHandler) HandleDeleteRestaurant(ctx *gin.Context) {
	id, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}

	req := request.DeleteRestaurantRequest{ConfirmName: ctx.Query("confirm_name")}
	if req.ConfirmName == "" && ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id, req.ConfirmName); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteRestaurant -> h.svc.Delete", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
