package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restodesk/backoffice/internal/api/handler/v1/request"
	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/service"
)

type POSService interface {
	Providers() []service.POSProviderInfo
	PreviewBaseURL(provider string, port int, explicit string) (string, error)
	Get(ctx context.Context, restaurantID uint) (domain.POSConfig, error)
	Test(ctx context.Context, restaurantID uint, input domain.POSInput) (domain.POSTestResult, error)
	Save(ctx context.Context, restaurantID uint, input domain.POSInput) (domain.POSConfig, error)
}

type POSHandler struct {
	svc POSService
}

func NewPOSHandler(svc POSService) *POSHandler {
	return &POSHandler{
		svc: svc,
	}
}

// HandleListPOSProviders godoc
// @Summary      List supported POS providers
// @Tags         pos
// @Produce      json
// @Success      200      {array}    service.POSProviderInfo
// @Router       /super-admin/pos/providers [get]
// @Security     BearerAuth
func (h *POSHandler) HandleListPOSProviders(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.Providers())
}

// HandlePreviewPOSBaseURL godoc
// @Summary      Preview the base URL a POS configuration resolves to
// @Tags         pos
// @Produce      json
// @Param        provider   query     string  true   "provider"
// @Param        port       query     int     false  "MPLUSKASSA port"
// @Param        base_url   query     string  false  "explicit base URL"
// @Success      200      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Router       /super-admin/pos/base-url [get]
// @Security     BearerAuth
func (h *POSHandler) HandlePreviewPOSBaseURL(ctx *gin.Context) {
	var q request.POSBaseURLQuery
	if !bindQuery(ctx, &q) {
		return
	}

	baseURL, err := h.svc.PreviewBaseURL(q.Provider, q.Port, q.BaseURL)
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePreviewPOSBaseURL -> h.svc.PreviewBaseURL", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"base_url": baseURL})
}

// HandleGetPOS godoc
// @Summary      Get the POS configuration of a restaurant
// @Tags         pos
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Success      200      {object}   domain.POSConfig
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/pos [get]
// @Security     BearerAuth
func (h *POSHandler) HandleGetPOS(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}

	pos, err := h.svc.Get(ctx.Request.Context(), restaurantID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetPOS -> h.svc.Get", err)
		return
	}

	ctx.JSON(http.StatusOK, pos)
}

// HandleTestPOS godoc
// @Summary      Test a POS connection without saving it
// @Description  A failed connection is a 200 with ok=false. An empty password reuses the stored one.
// @Tags         pos
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        request   body      request.POSRequest true "request body"
// @Success      200      {object}   domain.POSTestResult
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/pos/test [post]
// @Security     BearerAuth
func (h *POSHandler) HandleTestPOS(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	var req request.POSRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := h.svc.Test(ctx.Request.Context(), restaurantID, req.Input())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleTestPOS -> h.svc.Test", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleSavePOS godoc
// @Summary      Save the POS configuration
// @Tags         pos
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        request   body      request.POSRequest true "request body"
// @Success      200      {object}   domain.POSConfig
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/pos [put]
// @Security     BearerAuth
func (h *POSHandler) HandleSavePOS(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	var req request.POSRequest
	if !bindJSON(ctx, &req) {
		return
	}

	pos, err := h.svc.Save(ctx.Request.Context(), restaurantID, req.Input())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleSavePOS -> h.svc.Save", err)
		return
	}

	ctx.JSON(http.StatusOK, pos)
}
