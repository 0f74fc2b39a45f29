package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restodesk/backoffice/internal/api/handler/v1/request"
	"github.com/restodesk/backoffice/internal/api/handler/v1/response"
	"github.com/restodesk/backoffice/internal/domain"
)

type TransactionService interface {
	List(ctx context.Context, filter domain.TransactionFilter) (domain.TransactionPage, error)
	Summary(ctx context.Context, filter domain.TransactionFilter) (domain.TransactionSummary, error)
}

type TransactionHandler struct {
	svc TransactionService
}

func NewTransactionHandler(svc TransactionService) *TransactionHandler {
	return &TransactionHandler{
		svc: svc,
	}
}

// HandleListTransactions godoc
// @Summary      List transactions, newest first
// @Tags         transactions
// @Produce      json
// @Param        restaurant_id  query     int     false  "restaurant filter"
// @Param        status         query     string  false  "pending, succeeded, failed or refunded"
// @Param        from           query     string  false  "RFC 3339 lower bound"
// @Param        to             query     string  false  "RFC 3339 upper bound"
// @Param        page           query     int     false  "1-based page"
// @Param        page_size      query     int     false  "page size, at most 100"
// @Success      200      {object}   response.TransactionList
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/transactions [get]
// @Security     BearerAuth
func (h *TransactionHandler) HandleListTransactions(ctx *gin.Context) {
	var q request.ListTransactionsQuery
	if !bindQuery(ctx, &q) {
		return
	}
	h.list(ctx, q.Filter())
}

// HandleListRestaurantTransactions godoc
// @Summary      List the transactions of one restaurant
// @Tags         transactions
// @Produce      json
// @Param        restaurantID   path      int     true   "restaurant ID"
// @Param        status         query     string  false  "pending, succeeded, failed or refunded"
// @Param        from           query     string  false  "RFC 3339 lower bound"
// @Param        to             query     string  false  "RFC 3339 upper bound"
// @Param        page           query     int     false  "1-based page"
// @Param        page_size      query     int     false  "page size, at most 100"
// @Success      200      {object}   response.TransactionList
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/transactions [get]
// @Security     BearerAuth
func (h *TransactionHandler) HandleListRestaurantTransactions(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	var q request.ListTransactionsQuery
	if !bindQuery(ctx, &q) {
		return
	}
	filter := q.Filter()
	filter.RestaurantID = &restaurantID
	h.list(ctx, filter)
}

func (h *TransactionHandler) list(ctx *gin.Context, filter domain.TransactionFilter) {
	page, err := h.svc.List(ctx.Request.Context(), filter)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListTransactions -> h.svc.List", err)
		return
	}
	summary, err := h.svc.Summary(ctx.Request.Context(), filter)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListTransactions -> h.svc.Summary", err)
		return
	}

	ctx.JSON(http.StatusOK, response.TransactionList{
		TransactionPage: page,
		Summary:         summary,
	})
}

// HandleTransactionSummary godoc
// @Summary      Totals over the filtered transactions
// @Tags         transactions
// @Produce      json
// @Param        restaurant_id  query     int     false  "restaurant filter"
// @Param        status         query     string  false  "status filter"
// @Param        from           query     string  false  "RFC 3339 lower bound"
// @Param        to             query     string  false  "RFC 3339 upper bound"
// @Success      200      {object}   domain.TransactionSummary
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/transactions/summary [get]
// @Security     BearerAuth
func (h *TransactionHandler) HandleTransactionSummary(ctx *gin.Context) {
	var q request.ListTransactionsQuery
	if !bindQuery(ctx, &q) {
		return
	}

	summary, err := h.svc.Summary(ctx.Request.Context(), q.Filter())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleTransactionSummary -> h.svc.Summary", err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
