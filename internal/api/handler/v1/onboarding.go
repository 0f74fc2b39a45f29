package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/restodesk/backoffice/internal/api/handler/v1/request"
	"github.com/restodesk/backoffice/internal/api/handler/v1/response"
	"github.com/restodesk/backoffice/internal/api/middleware"
	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/realtime"
	"github.com/restodesk/backoffice/internal/service"
)

type OnboardingService interface {
	Get(ctx context.Context, restaurantID uint) (domain.OnboardingSnapshot, error)
	SaveStep(ctx context.Context, restaurantID uint, step domain.OnboardingStep, expectedVersion int64, input service.StepInput) (domain.OnboardingSnapshot, error)
	Next(ctx context.Context, restaurantID uint, expectedVersion int64) (domain.OnboardingSnapshot, error)
	Previous(ctx context.Context, restaurantID uint, expectedVersion int64) (domain.OnboardingSnapshot, error)
	CreatePaymentLink(ctx context.Context, restaurantID uint, expectedVersion int64) (domain.OnboardingSnapshot, domain.PaymentAccountLink, error)
	ConfirmPaymentLink(ctx context.Context, restaurantID uint, expectedVersion int64) (domain.OnboardingSnapshot, error)
	ConnectMessaging(ctx context.Context, restaurantID uint, expectedVersion int64) (domain.OnboardingSnapshot, error)
	Finish(ctx context.Context, restaurantID uint, expectedVersion int64) (domain.Restaurant, error)
	Reset(ctx context.Context, restaurantID uint) error
	ListEvents(ctx context.Context, restaurantID uint) ([]domain.OnboardingEvent, error)
}

type OnboardingHandler struct {
	svc      OnboardingService
	hub      *realtime.Hub
	upgrader *websocket.Upgrader
}

func NewOnboardingHandler(svc OnboardingService, hub *realtime.Hub, upgrader *websocket.Upgrader) *OnboardingHandler {
	return &OnboardingHandler{
		svc:      svc,
		hub:      hub,
		upgrader: upgrader,
	}
}

// parseStep accepts the step index or its name.
func parseStep(raw string) (domain.OnboardingStep, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		step := domain.OnboardingStep(n)
		if step.Valid() {
			return step, nil
		}
		return 0, domain.ErrInvalidOnboardingStep
	}
	for step := domain.FirstOnboardingStep; step <= domain.LastOnboardingStep; step++ {
		if step.String() == raw {
			return step, nil
		}
	}

	return 0, domain.ErrInvalidOnboardingStep
}

// HandleGetOnboarding godoc
// @Summary      Get the onboarding snapshot, creating it on first visit
// @Tags         onboarding
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Success      200      {object}   response.OnboardingSnapshot
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/onboarding [get]
// @Security     BearerAuth
func (h *OnboardingHandler) HandleGetOnboarding(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}

	snapshot, err := h.svc.Get(ctx.Request.Context(), restaurantID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetOnboarding -> h.svc.Get", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewOnboardingSnapshot(snapshot))
}

// HandleSaveOnboardingStep godoc
// @Summary      Save the data of one step
// @Description  step is the index (1, 3..6) or the name. Payment is driven by the payment-link endpoints instead.
// @Tags         onboarding
// @Produce      json
// @Param        restaurantID   path      int     true  "restaurant ID"
// @Param        step           path      string  true  "step index or name"
// @Param        request   body      request.StepRequest true "request body"
// @Success      200      {object}   response.OnboardingSnapshot
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/onboarding/steps/{step} [put]
// @Security     BearerAuth
func (h *OnboardingHandler) HandleSaveOnboardingStep(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	step, err := parseStep(ctx.Param(paramStep))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	var req request.StepRequest
	if !bindJSON(ctx, &req) {
		return
	}

	snapshot, err := h.svc.SaveStep(ctx.Request.Context(), restaurantID, step, req.Version, req.Input())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleSaveOnboardingStep -> h.svc.SaveStep", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewOnboardingSnapshot(snapshot))
}

type versionedCall func(ctx context.Context, restaurantID uint, expectedVersion int64) (domain.OnboardingSnapshot, error)

func (h *OnboardingHandler) transition(ctx *gin.Context, op string, call versionedCall) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	var req request.VersionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	snapshot, err := call(ctx.Request.Context(), restaurantID, req.Version)
	if err != nil {
		renderServiceErr(ctx, op, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewOnboardingSnapshot(snapshot))
}

// HandleOnboardingNext godoc
// @Summary      Validate the current step and move forward
// @Tags         onboarding
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        request   body      request.VersionRequest true "request body"
// @Success      200      {object}   response.OnboardingSnapshot
// @Failure      409      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/onboarding/next [post]
// @Security     BearerAuth
func (h *OnboardingHandler) HandleOnboardingNext(ctx *gin.Context) {
	h.transition(ctx, "v1.HandleOnboardingNext -> h.svc.Next", h.svc.Next)
}

// HandleOnboardingPrevious godoc
// @Summary      Move back one step without validation
// @Tags         onboarding
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        request   body      request.VersionRequest true "request body"
// @Success      200      {object}   response.OnboardingSnapshot
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/onboarding/previous [post]
// @Security     BearerAuth
func (h *OnboardingHandler) HandleOnboardingPrevious(ctx *gin.Context) {
	h.transition(ctx, "v1.HandleOnboardingPrevious -> h.svc.Previous", h.svc.Previous)
}

// HandleConfirmPaymentLink godoc
// @Summary      Check whether the payment account accepts charges
// @Tags         onboarding
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        request   body      request.VersionRequest true "request body"
// @Success      200      {object}   response.OnboardingSnapshot
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/onboarding/payment-link/confirm [post]
// @Security     BearerAuth
func (h *OnboardingHandler) HandleConfirmPaymentLink(ctx *gin.Context) {
	h.transition(ctx, "v1.HandleConfirmPaymentLink -> h.svc.ConfirmPaymentLink", h.svc.ConfirmPaymentLink)
}

// HandleConnectMessaging godoc
// @Summary      Send the welcome message to the messaging group
// @Tags         onboarding
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        request   body      request.VersionRequest true "request body"
// @Success      200      {object}   response.OnboardingSnapshot
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/onboarding/messaging/connect [post]
// @Security     BearerAuth
func (h *OnboardingHandler) HandleConnectMessaging(ctx *gin.Context) {
	h.transition(ctx, "v1.HandleConnectMessaging -> h.svc.ConnectMessaging", h.svc.ConnectMessaging)
}

// HandleCreatePaymentLink godoc
// @Summary      Create the payment provider onboarding link
// @Tags         onboarding
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        request   body      request.VersionRequest true "request body"
// @Success      200      {object}   response.PaymentLinkResponse
// @Failure      409      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/onboarding/payment-link [post]
// @Security     BearerAuth
func (h *OnboardingHandler) HandleCreatePaymentLink(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	var req request.VersionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	snapshot, link, err := h.svc.CreatePaymentLink(ctx.Request.Context(), restaurantID, req.Version)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreatePaymentLink -> h.svc.CreatePaymentLink", err)
		return
	}

	ctx.JSON(http.StatusOK, response.PaymentLinkResponse{
		Snapshot: response.NewOnboardingSnapshot(snapshot),
		Link:     link,
	})
}

// HandleFinishOnboarding godoc
// @Summary      Finish the onboarding
// @Description  Only from the messaging step with every step complete. Writes staff, POS, tables, review link and messaging group into the restaurant.
// @Tags         onboarding
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        request   body      request.VersionRequest true "request body"
// @Success      200      {object}   domain.Restaurant
// @Failure      409      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/onboarding/finish [post]
// @Security     BearerAuth
func (h *OnboardingHandler) HandleFinishOnboarding(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	var req request.VersionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	restaurant, err := h.svc.Finish(ctx.Request.Context(), restaurantID, req.Version)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleFinishOnboarding -> h.svc.Finish", err)
		return
	}

	ctx.JSON(http.StatusOK, restaurant)
}

// HandleResetOnboarding godoc
// @Summary      Discard the onboarding snapshot
// @Tags         onboarding
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Success      204
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/onboarding [delete]
// @Security     BearerAuth
func (h *OnboardingHandler) HandleResetOnboarding(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}

	if err := h.svc.Reset(ctx.Request.Context(), restaurantID); err != nil {
		renderServiceErr(ctx, "v1.HandleResetOnboarding -> h.svc.Reset", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListOnboardingEvents godoc
// @Summary      Audit log of the onboarding
// @Tags         onboarding
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Success      200      {array}    domain.OnboardingEvent
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/onboarding/events [get]
// @Security     BearerAuth
func (h *OnboardingHandler) HandleListOnboardingEvents(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}

	list, err := h.svc.ListEvents(ctx.Request.Context(), restaurantID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListOnboardingEvents -> h.svc.ListEvents", err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// HandleOnboardingFeed godoc
// @Summary      Live onboarding updates over a websocket
// @Description  Sends the current snapshot first, then every change made from any tab.
// @Tags         onboarding
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Success      101
// @Failure      404      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/onboarding/ws [get]
// @Security     BearerAuth
func (h *OnboardingHandler) HandleOnboardingFeed(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}

	snapshot, err := h.svc.Get(ctx.Request.Context(), restaurantID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleOnboardingFeed -> h.svc.Get", err)
		return
	}
	initial, err := json.Marshal(SnapshotMessage(snapshot))
	if err != nil {
		err = fmt.Errorf("v1.HandleOnboardingFeed -> json.Marshal -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	userID, _ := middleware.UserID(ctx)
	if err = realtime.ServeWS(h.hub, h.upgrader, ctx.Writer, ctx.Request, restaurantID, userID, initial); err != nil {
		// The upgrader has already answered the request.
		zap.L().Debug("websocket upgrade failed", zap.Uint("restaurant_id", restaurantID), zap.Error(err))
	}
}

func SnapshotMessage(snapshot domain.OnboardingSnapshot) response.LiveMessage {
	dto := response.NewOnboardingSnapshot(snapshot)

	return response.LiveMessage{Type: response.LiveSnapshot, Snapshot: &dto}
}

func RemovedMessage(reason string) response.LiveMessage {
	return response.LiveMessage{Type: response.LiveRemoved, Reason: reason}
}
