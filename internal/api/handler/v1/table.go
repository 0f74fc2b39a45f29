package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restodesk/backoffice/internal/api/handler/v1/request"
	"github.com/restodesk/backoffice/internal/api/handler/v1/response"
	"github.com/restodesk/backoffice/internal/domain"
)

type TableService interface {
	List(ctx context.Context, restaurantID uint) ([]domain.Table, error)
	Create(ctx context.Context, table domain.Table) (domain.Table, error)
	Generate(ctx context.Context, restaurantID uint, count int, sections []string) ([]domain.Table, error)
	Update(ctx context.Context, table domain.Table) (domain.Table, error)
	ToggleActive(ctx context.Context, restaurantID, id uint) (domain.Table, error)
	Delete(ctx context.Context, restaurantID, id uint) error
	QRCode(ctx context.Context, restaurantID, id uint, size int) ([]byte, error)
}

type TableHandler struct {
	svc TableService
}

func NewTableHandler(svc TableService) *TableHandler {
	return &TableHandler{
		svc: svc,
	}
}

// HandleListTables godoc
// @Summary      List the tables of a restaurant
// @Tags         tables
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Success      200      {array}    domain.Table
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/tables [get]
// @Security     BearerAuth
func (h *TableHandler) HandleListTables(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}

	tables, err := h.svc.List(ctx.Request.Context(), restaurantID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListTables -> h.svc.List", err)
		return
	}

	ctx.JSON(http.StatusOK, tables)
}

// HandleCreateTable godoc
// @Summary      Add a table
// @Tags         tables
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        request   body      request.TableRequest true "request body"
// @Success      201      {object}   domain.Table
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/tables [post]
// @Security     BearerAuth
func (h *TableHandler) HandleCreateTable(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	var req request.TableRequest
	if !bindJSON(ctx, &req) {
		return
	}

	table, err := h.svc.Create(ctx.Request.Context(), domain.Table{
		RestaurantID: restaurantID,
		Number:       req.Number,
		Section:      req.Section,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateTable -> h.svc.Create", err)
		return
	}

	ctx.JSON(http.StatusCreated, table)
}

// HandleGenerateTables godoc
// @Summary      Generate tables in bulk
// @Description  Numbers continue after the highest existing table, sections are assigned round-robin.
// @Tags         tables
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        request   body      request.GenerateTablesRequest true "request body"
// @Success      201      {array}    domain.Table
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/tables/generate [post]
// @Security     BearerAuth
func (h *TableHandler) HandleGenerateTables(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	var req request.GenerateTablesRequest
	if !bindJSON(ctx, &req) {
		return
	}

	tables, err := h.svc.Generate(ctx.Request.Context(), restaurantID, req.Count, req.Sections)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGenerateTables -> h.svc.Generate", err)
		return
	}

	ctx.JSON(http.StatusCreated, tables)
}

// HandleUpdateTable godoc
// @Summary      Renumber or move a table
// @Tags         tables
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        tableID        path      int  true  "table ID"
// @Param        request   body      request.TableRequest true "request body"
// @Success      200      {object}   domain.Table
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/tables/{tableID} [put]
// @Security     BearerAuth
func (h *TableHandler) HandleUpdateTable(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	id, ok := pathID(ctx, paramTableID)
	if !ok {
		return
	}
	var req request.TableRequest
	if !bindJSON(ctx, &req) {
		return
	}

	table, err := h.svc.Update(ctx.Request.Context(), domain.Table{
		ID:           id,
		RestaurantID: restaurantID,
		Number:       req.Number,
		Section:      req.Section,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateTable -> h.svc.Update", err)
		return
	}

	ctx.JSON(http.StatusOK, table)
}

// HandleToggleTableActive godoc
// @Summary      Activate or deactivate a table
// @Tags         tables
// @Produce      json
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        tableID        path      int  true  "table ID"
// @Success      200      {object}   domain.Table
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/tables/{tableID}/toggle-active [post]
// @Security     BearerAuth
func (h *TableHandler) HandleToggleTableActive(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	id, ok := pathID(ctx, paramTableID)
	if !ok {
		return
	}

	table, err := h.svc.ToggleActive(ctx.Request.Context(), restaurantID, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleToggleTableActive -> h.svc.ToggleActive", err)
		return
	}

	ctx.JSON(http.StatusOK, table)
}

// HandleDeleteTable godoc
// @Summary      Delete a table
// @Tags         tables
// @Param        restaurantID   path      int  true  "restaurant ID"
// @Param        tableID        path      int  true  "table ID"
// @Success      204
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/tables/{tableID} [delete]
// @Security     BearerAuth
func (h *TableHandler) HandleDeleteTable(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	id, ok := pathID(ctx, paramTableID)
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), restaurantID, id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteTable -> h.svc.Delete", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleTableQRCode godoc
// @Summary      Render the table link as a QR code
// @Tags         tables
// @Produce      png
// @Param        restaurantID   path      int  true   "restaurant ID"
// @Param        tableID        path      int  true   "table ID"
// @Param        size           query     int  false  "edge length in pixels, default 256"
// @Success      200      {file}     binary
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /super-admin/restaurants/{restaurantID}/tables/{tableID}/qr.png [get]
// @Security     BearerAuth
func (h *TableHandler) HandleTableQRCode(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, paramRestaurantID)
	if !ok {
		return
	}
	id, ok := pathID(ctx, paramTableID)
	if !ok {
		return
	}
	var q request.QRCodeQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	png, err := h.svc.QRCode(ctx.Request.Context(), restaurantID, id, q.Size)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleTableQRCode -> h.svc.QRCode", err)
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}
