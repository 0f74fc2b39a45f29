package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restodesk/backoffice/internal/api/handler/v1/request"
	"github.com/restodesk/backoffice/internal/domain"
)

type PaymentService interface {
	GetSettings(ctx context.Context, restaurantID uint) (domain.FeeConfig, error)
	UpdateSettings(ctx context.Context, restaurantID uint, fees domain.FeeConfig) (domain.FeeConfig, error)
	CreateAccountLink(ctx context.Context, restaurantID uint) (domain.PaymentAccountLink, error)
	SyncAccountStatus(ctx context.Context, restaurantID uint) (domain.FeeConfig, error)
}

type PaymentHandler struct {
	svc PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
	}
}

// HandleGetPaymentSettings godoc
// @Summary      Get fee and payment account settings
// @Tags         payment
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Success      200      {object}   domain.FeeConfig
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/payment [get]
// @Security     BearerAuth
func (h *PaymentHandler) HandleGetPaymentSettings(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}

	fees, err := h.svc.GetSettings(ctx.Request.Context(), restaurantID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetPaymentSettings -> h.svc.GetSettings", err)
		return
	}

	ctx.JSON(http.StatusOK, fees)
}

// HandleUpdatePaymentSettings godoc
// @Summary      Update the fee configuration
// @Tags         payment
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        request   body      request.PaymentSettingsRequest true "request body"
// @Success      200      {object}   domain.FeeConfig
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/payment [put]
// @Security     BearerAuth
func (h *PaymentHandler) HandleUpdatePaymentSettings(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	var req request.PaymentSettingsRequest
	if !bindJSON(ctx, &req) {
		return
	}

	fees, err := h.svc.UpdateSettings(ctx.Request.Context(), restaurantID, req.Fees())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdatePaymentSettings -> h.svc.UpdateSettings", err)
		return
	}

	ctx.JSON(http.StatusOK, fees)
}

// HandleCreatePaymentAccountLink godoc
// @Summary      Create a hosted onboarding link for the payment account
// @Tags         payment
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Success      200      {object}   domain.PaymentAccountLink
// @Failure      404      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/payment/account-link [post]
// @Security     BearerAuth
func (h *PaymentHandler) HandleCreatePaymentAccountLink(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}

	link, err := h.svc.CreateAccountLink(ctx.Request.Context(), restaurantID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreatePaymentAccountLink -> h.svc.CreateAccountLink", err)
		return
	}

	ctx.JSON(http.StatusOK, link)
}

// HandleSyncPaymentAccount godoc
// @Summary      Refresh the payment account status from the provider
// @Tags         payment
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Success      200      {object}   domain.FeeConfig
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/payment/sync [post]
// @Security     BearerAuth
func (h *PaymentHandler) HandleSyncPaymentAccount(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}

	fees, err := h.svc.SyncAccountStatus(ctx.Request.Context(), restaurantID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleSyncPaymentAccount -> h.svc.SyncAccountStatus", err)
		return
	}

	ctx.JSON(http.StatusOK, fees)
}
